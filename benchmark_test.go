package main

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/xfmoulet/qoi"
)

func BenchmarkEncrypt(b *testing.B) {
	img := makeTestImage(256, 256)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Encrypt(img, "benchmark", true); err != nil {
			b.Fatalf("encrypt failed: %v", err)
		}
	}
}

func BenchmarkDecrypt(b *testing.B) {
	img := makeTestImage(256, 256)
	enc, err := Encrypt(img, "benchmark", true)
	if err != nil {
		b.Fatalf("encrypt failed: %v", err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decrypt(enc, "benchmark", true); err != nil {
			b.Fatalf("decrypt failed: %v", err)
		}
	}
}

// BenchmarkEncryptedEncode compares serializing an encrypted (high
// entropy) buffer through the .veil container against PNG and QOI —
// the formats the CLI would otherwise have to use.
func BenchmarkEncryptedEncode(b *testing.B) {
	img := makeTestImage(256, 256)
	enc, err := Encrypt(img, "benchmark", true)
	if err != nil {
		b.Fatalf("encrypt failed: %v", err)
	}
	rgba := enc.ToRGBA()

	b.Run("VEIL", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := EncodeContainer(enc, true); err != nil {
				b.Fatalf("container encode failed: %v", err)
			}
		}
	})

	b.Run("PNG", func(b *testing.B) {
		var buf bytes.Buffer
		for i := 0; i < b.N; i++ {
			buf.Reset()
			if err := png.Encode(&buf, rgba); err != nil {
				b.Fatalf("png encode failed: %v", err)
			}
		}
	})

	b.Run("QOI", func(b *testing.B) {
		var buf bytes.Buffer
		for i := 0; i < b.N; i++ {
			buf.Reset()
			if err := qoi.Encode(&buf, rgba); err != nil {
				b.Fatalf("qoi encode failed: %v", err)
			}
		}
	})
}
