package main

import (
	"image"
	"image/draw"
)

// FromImage flattens any image.Image into a row-major RGB buffer with
// bounds normalized to (0,0). Alpha is discarded — the transform works
// on RGB only, matching what the container stores.
func FromImage(src image.Image) Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)

	pix := make([]Pixel, w*h)
	for i := range pix {
		pix[i] = Pixel{
			R: rgba.Pix[4*i+0],
			G: rgba.Pix[4*i+1],
			B: rgba.Pix[4*i+2],
		}
	}
	return Image{Width: w, Height: h, Pix: pix}
}

// ToRGBA expands the buffer back into a standard *image.RGBA with alpha
// forced to opaque.
func (m Image) ToRGBA() *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i, px := range m.Pix {
		dst.Pix[4*i+0] = px.R
		dst.Pix[4*i+1] = px.G
		dst.Pix[4*i+2] = px.B
		dst.Pix[4*i+3] = 255
	}
	return dst
}
