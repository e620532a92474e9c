// Package keccak implements the legacy Keccak-256 hash used by Ethereum.
//
// The permutation and sponge are written out in plain Go. Keccak-256 pads
// with the pre-standard Keccak domain suffix 0x01, not the 0x06 chosen by
// FIPS 202 for SHA3-256, so the digests differ from crypto/sha3.
//
// Every call works on its own state; nothing is shared between calls, so the
// functions are safe for concurrent use. A Hasher is not.
package keccak

import "hash"

const (
	// rate is the sponge rate for Keccak-256: (1600 - 2*256) / 8 = 136 bytes.
	rate = 136

	// Size is the length of a Keccak-256 digest in bytes.
	Size = 32
)

// Sum256 computes the Keccak-256 hash of data.
func Sum256(data []byte) [Size]byte {
	return [Size]byte(sponge(rate, data, dsbyteKeccak, Size))
}

// Hasher is a streaming Keccak-256 hasher. The zero value is ready to use.
type Hasher struct {
	a        [25]uint64
	buf      [rate]byte
	absorbed int
}

var _ hash.Hash = (*Hasher)(nil)

// New256 returns a hash.Hash computing Keccak-256.
func New256() hash.Hash {
	return &Hasher{}
}

// Reset resets the hasher to its initial state.
func (h *Hasher) Reset() {
	*h = Hasher{}
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the sponge rate in bytes.
func (h *Hasher) BlockSize() int { return rate }

// Write absorbs p into the hasher. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)

	if h.absorbed > 0 {
		c := copy(h.buf[h.absorbed:], p)
		h.absorbed += c
		p = p[c:]
		if h.absorbed == rate {
			xorIn(&h.a, h.buf[:])
			keccakF1600(&h.a)
			h.absorbed = 0
		}
	}

	for len(p) >= rate {
		xorIn(&h.a, p[:rate])
		keccakF1600(&h.a)
		p = p[rate:]
	}

	if len(p) > 0 {
		h.absorbed = copy(h.buf[:], p)
	}

	return n, nil
}

// Sum256 returns the digest of everything written so far.
// It does not modify the hasher state.
func (h *Hasher) Sum256() [Size]byte {
	a := h.a
	pad(&a, h.buf[:h.absorbed], rate, dsbyteKeccak)
	keccakF1600(&a)
	return [Size]byte(squeeze(&a, rate, Size))
}

// Sum appends the current digest to b.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Sum256()
	return append(b, d[:]...)
}
