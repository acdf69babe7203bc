package main

// ShiftColors adds a pseudorandom offset, mod 256, to every channel of
// every pixel. Offsets are drawn three per pixel — R, G, B, in buffer
// order — from a generator freshly seeded with seed. Pixel count and
// ordering are unchanged; the input slice is not modified.
func ShiftColors(pixels []Pixel, seed Seed) []Pixel {
	return shiftColors(pixels, seed, false)
}

// UnshiftColors subtracts the exact offsets ShiftColors added: it draws
// the identical per-pixel sequence from the same seed, so
// UnshiftColors(ShiftColors(p, s), s) restores p channel for channel.
func UnshiftColors(pixels []Pixel, seed Seed) []Pixel {
	return shiftColors(pixels, seed, true)
}

func shiftColors(pixels []Pixel, seed Seed, reverse bool) []Pixel {
	rng := newPrand(seed)
	out := make([]Pixel, len(pixels))
	for i, px := range pixels {
		// uint8 arithmetic wraps, which is exactly the mod 256 we want.
		sr := uint8(rng.intn(256))
		sg := uint8(rng.intn(256))
		sb := uint8(rng.intn(256))
		if reverse {
			out[i] = Pixel{px.R - sr, px.G - sg, px.B - sb}
		} else {
			out[i] = Pixel{px.R + sr, px.G + sg, px.B + sb}
		}
	}
	return out
}
