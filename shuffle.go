package main

import "fmt"

// ShufflePixels reorders a row-major pixel buffer with a permutation π
// drawn from seed: out[i] = in[π(i)]. Only positions move — pixel
// values, buffer length and dimensions are preserved. Buffers of zero
// or one pixel come back as plain copies.
func ShufflePixels(pixels []Pixel, width, height int, seed Seed) ([]Pixel, error) {
	if err := checkShape(pixels, width, height); err != nil {
		return nil, err
	}

	n := len(pixels)
	out := make([]Pixel, n)
	if n <= 1 {
		copy(out, pixels)
		return out, nil
	}

	perm := newPrand(seed).perm(n)
	for i, src := range perm {
		out[i] = pixels[src]
	}
	return out, nil
}

// UnshufflePixels draws the same permutation π from seed, inverts it
// (inv[π(i)] = i for all i) and applies the inverse, placing every pixel
// back at its pre-shuffle position.
func UnshufflePixels(pixels []Pixel, width, height int, seed Seed) ([]Pixel, error) {
	if err := checkShape(pixels, width, height); err != nil {
		return nil, err
	}

	n := len(pixels)
	out := make([]Pixel, n)
	if n <= 1 {
		copy(out, pixels)
		return out, nil
	}

	perm := newPrand(seed).perm(n)
	inv := make([]int, n)
	for i, v := range perm {
		inv[v] = i
	}
	for i, src := range inv {
		out[i] = pixels[src]
	}
	return out, nil
}

func checkShape(pixels []Pixel, width, height int) error {
	if width < 0 || height < 0 || len(pixels) != width*height {
		return fmt.Errorf("%w: %d pixels for %dx%d", ErrShapeMismatch, len(pixels), width, height)
	}
	return nil
}
