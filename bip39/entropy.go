package bip39

import (
	"errors"
	"fmt"

	sha256simd "github.com/minio/sha256-simd"
)

const (
	minEntropyBytes = 16
	maxEntropyBytes = 32

	// bitsPerWord is the width of a word-list index.
	bitsPerWord = 11
)

// ErrEntropyLength is returned for entropy that is not 16..32 bytes in
// steps of 4.
var ErrEntropyLength = errors.New("entropy must be 16, 20, 24, 28 or 32 bytes")

func checkEntropy(entropy []byte) error {
	n := len(entropy)
	if n < minEntropyBytes || n > maxEntropyBytes || n%4 != 0 {
		return fmt.Errorf("%w: got %d", ErrEntropyLength, n)
	}
	return nil
}

// EntropyChecksum returns the BIP-39 checksum of entropy: the first
// len(entropy)*8/32 bits of SHA-256(entropy), right-aligned in a byte.
func EntropyChecksum(entropy []byte) (byte, error) {
	if err := checkEntropy(entropy); err != nil {
		return 0, err
	}
	csBits := len(entropy) / 4
	sum := sha256simd.Sum256(entropy)
	return sum[0] >> (8 - csBits), nil
}

// WordIndices splits entropy followed by its checksum into 11-bit indices
// into the BIP-39 word list. 16 bytes of entropy give 12 indices, 32 bytes
// give 24.
func WordIndices(entropy []byte) ([]int, error) {
	cs, err := EntropyChecksum(entropy)
	if err != nil {
		return nil, err
	}
	csBits := len(entropy) / 4

	// entropy || checksum, with the checksum left-aligned in the last byte
	buf := make([]byte, len(entropy)+1)
	copy(buf, entropy)
	buf[len(entropy)] = cs << (8 - csBits)

	total := len(entropy)*8 + csBits
	indices := make([]int, total/bitsPerWord)
	for i := range indices {
		idx := 0
		for j := 0; j < bitsPerWord; j++ {
			bit := i*bitsPerWord + j
			idx = idx<<1 | int(buf[bit/8]>>(7-bit%8)&1)
		}
		indices[i] = idx
	}
	return indices, nil
}
