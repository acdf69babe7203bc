package main

import "crypto/sha256"

// Seed is the 256-bit value driving every pseudorandom choice in the
// pipeline. Read as a big-endian unsigned integer.
type Seed [sha256.Size]byte

// DeriveSeed turns a password into a Seed: the SHA-256 digest of the
// password's UTF-8 bytes. Identical passwords always produce identical
// seeds, on every platform. The empty password is rejected before any
// hashing happens.
func DeriveSeed(password string) (Seed, error) {
	if password == "" {
		return Seed{}, ErrEmptyPassword
	}
	return Seed(sha256.Sum256([]byte(password))), nil
}
