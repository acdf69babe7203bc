package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/xfmoulet/qoi"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "encrypt":
		runEncrypt(os.Args[2:])
	case "decrypt":
		runDecrypt(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprint(os.Stderr,
		"Encrypt: veil encrypt [-p password] [-no-shift] <image|url> <output.veil>\n"+
			"Decrypt: veil decrypt [-p password] <input.veil> <output.png|.jpg|.qoi>\n"+
			"The password may also be set via VEIL_PASSWORD.\n")
	os.Exit(1)
}

func runEncrypt(args []string) {
	cmd := flag.NewFlagSet("encrypt", flag.ExitOnError)
	pass := cmd.String("p", "", "password (or set VEIL_PASSWORD)")
	noShift := cmd.Bool("no-shift", false, "skip the channel shift stage")
	cmd.Parse(args)
	if cmd.NArg() != 2 {
		usage()
	}

	password := resolvePassword(*pass)
	inPath, outPath := cmd.Arg(0), cmd.Arg(1)

	src, err := loadImage(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load error:", err)
		os.Exit(1)
	}

	img := FromImage(src)
	enc, err := Encrypt(img, password, !*noShift)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encrypt error:", err)
		os.Exit(1)
	}

	data, err := EncodeContainer(enc, !*noShift)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode error:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write error:", err)
		os.Exit(1)
	}
	fmt.Printf("Encrypted %s (%dx%d) → %s\n", inPath, img.Width, img.Height, outPath)
}

func runDecrypt(args []string) {
	cmd := flag.NewFlagSet("decrypt", flag.ExitOnError)
	pass := cmd.String("p", "", "password (or set VEIL_PASSWORD)")
	cmd.Parse(args)
	if cmd.NArg() != 2 {
		usage()
	}

	password := resolvePassword(*pass)
	inPath, outPath := cmd.Arg(0), cmd.Arg(1)

	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "read error:", err)
		os.Exit(1)
	}

	img, shifted, err := DecodeContainer(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decode error:", err)
		os.Exit(1)
	}

	dec, err := Decrypt(img, password, shifted)
	if err != nil {
		fmt.Fprintln(os.Stderr, "decrypt error:", err)
		os.Exit(1)
	}

	if err := saveImage(dec, outPath); err != nil {
		fmt.Fprintln(os.Stderr, "save error:", err)
		os.Exit(1)
	}
	fmt.Printf("Decrypted %s (%dx%d) → %s\n", inPath, dec.Width, dec.Height, outPath)
}

func resolvePassword(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("VEIL_PASSWORD"); env != "" {
		return env
	}
	fmt.Fprintln(os.Stderr, "password is required: use -p or VEIL_PASSWORD")
	os.Exit(1)
	return ""
}

// loadImage reads an image from a local path or an http(s) URL.
func loadImage(path string) (image.Image, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return fetchImage(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".qoi") {
		return qoi.Decode(f)
	}
	img, _, err := image.Decode(f)
	return img, err
}

func fetchImage(url string) (image.Image, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}

func saveImage(img Image, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	rgba := img.ToRGBA()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(out, rgba, &jpeg.Options{Quality: 95})
	case ".qoi":
		return qoi.Encode(out, rgba)
	default:
		return png.Encode(out, rgba)
	}
}
