package main

import (
	"crypto/sha256"
	"encoding/binary"
)

// prand is a deterministic sequence generator running SHA-256 in counter
// mode: block k of the stream is SHA-256(seed || k), with k a big-endian
// uint64 starting at 0, and each block is consumed left to right, eight
// bytes per draw. Two instances built from the same seed emit
// bit-identical streams — that is the invariant the reverse transforms
// rely on to re-derive the exact shifts and permutation the forward
// transforms consumed.
type prand struct {
	seed    Seed
	counter uint64
	buf     [sha256.Size]byte
	off     int
}

func newPrand(seed Seed) *prand {
	// off at the end of buf forces a refill on the first draw.
	return &prand{seed: seed, off: sha256.Size}
}

func (p *prand) refill() {
	var ctr [8]byte
	binary.BigEndian.PutUint64(ctr[:], p.counter)
	h := sha256.New()
	h.Write(p.seed[:])
	h.Write(ctr[:])
	h.Sum(p.buf[:0])
	p.off = 0
	p.counter++
}

func (p *prand) nextUint64() uint64 {
	if p.off+8 > len(p.buf) {
		p.refill()
	}
	v := binary.BigEndian.Uint64(p.buf[p.off:])
	p.off += 8
	return v
}

// intn returns a uniform integer in [0, n). Draws at or above the
// largest multiple of n that fits in a uint64 are rejected, so the
// modulo below carries no bias.
func (p *prand) intn(n int) int {
	if n <= 0 {
		panic("prand: intn bound must be positive")
	}
	bound := uint64(n)
	limit := (^uint64(0) / bound) * bound
	for {
		if v := p.nextUint64(); v < limit {
			return int(v % bound)
		}
	}
}

// perm returns a permutation of [0,n) drawn by Fisher–Yates over the
// identity: position i swaps with j = intn(i+1), for i from n-1 down to
// 1. The iteration direction and draw bounds are fixed, so the same seed
// always yields the same permutation.
func (p *prand) perm(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := p.intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
