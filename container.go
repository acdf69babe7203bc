package main

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// The .veil container carries encrypted pixels losslessly. PNG would
// spend effort compressing what is deliberately high-entropy data and
// JPEG would destroy it, so the payload is raw RGB behind zstd.
//
// Layout, all integers big-endian:
//
//	magic "VEIL\n" (5) | width uint32 | height uint32 | flags uint8 | zstd(RGB...)
//
// flags bit 0 records whether the channel shift stage was applied, so
// decryption does not depend on the caller remembering the setting.
const (
	containerMagic = "VEIL\n"
	headerSize     = len(containerMagic) + 4 + 4 + 1

	flagShifted = 1 << 0

	// Each side is capped so width*height*3 always fits in an int64,
	// even when the dimensions come from a hostile header.
	maxContainerDim = 1 << 24
)

var (
	zenc = mustNewZstdEncoder()
	zdec = mustNewZstdDecoder()
)

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

// EncodeContainer serializes an image into the .veil container format.
// shifted records whether the channel shift stage was applied when the
// image was encrypted.
func EncodeContainer(img Image, shifted bool) ([]byte, error) {
	if img.Width > maxContainerDim || img.Height > maxContainerDim {
		return nil, fmt.Errorf("%w: %dx%d exceeds container limit of %d per side", ErrShapeMismatch, img.Width, img.Height, maxContainerDim)
	}
	if err := img.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(containerMagic)

	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:4], uint32(img.Width))
	binary.BigEndian.PutUint32(dims[4:8], uint32(img.Height))
	buf.Write(dims[:])

	var flags byte
	if shifted {
		flags |= flagShifted
	}
	buf.WriteByte(flags)

	raw := make([]byte, 0, len(img.Pix)*3)
	for _, px := range img.Pix {
		raw = append(raw, px.R, px.G, px.B)
	}
	buf.Write(zenc.EncodeAll(raw, nil))

	return buf.Bytes(), nil
}

// DecodeContainer parses a .veil container back into its pixel buffer
// and reports whether the channel shift stage was applied at encryption
// time. Truncated data, a bad magic, or a payload whose length
// disagrees with the header dimensions abort with no partial result.
func DecodeContainer(data []byte) (Image, bool, error) {
	if len(data) < headerSize {
		return Image{}, false, fmt.Errorf("%w: short header", ErrInvalidMagic)
	}
	if string(data[:len(containerMagic)]) != containerMagic {
		return Image{}, false, ErrInvalidMagic
	}
	pos := len(containerMagic)
	width := int(binary.BigEndian.Uint32(data[pos : pos+4]))
	height := int(binary.BigEndian.Uint32(data[pos+4 : pos+8]))
	flags := data[pos+8]
	if width > maxContainerDim || height > maxContainerDim {
		return Image{}, false, fmt.Errorf("%w: %dx%d exceeds container limit of %d per side", ErrShapeMismatch, width, height, maxContainerDim)
	}

	raw, err := zdec.DecodeAll(data[headerSize:], nil)
	if err != nil {
		return Image{}, false, fmt.Errorf("zstd decode: %w", err)
	}
	if len(raw) != width*height*3 {
		return Image{}, false, fmt.Errorf("%w: %d payload bytes for %dx%d", ErrShapeMismatch, len(raw), width, height)
	}

	pix := make([]Pixel, width*height)
	for i := range pix {
		pix[i] = Pixel{R: raw[3*i], G: raw[3*i+1], B: raw[3*i+2]}
	}
	return Image{Width: width, Height: height, Pix: pix}, flags&flagShifted != 0, nil
}
