package keccak

import "encoding/binary"

const (
	// stateSize is the width of Keccak-f[1600] in bytes.
	stateSize = 200

	// dsbyteKeccak is the legacy Keccak domain suffix. SHA-3 uses 0x06;
	// Ethereum and EIP-55 depend on 0x01.
	dsbyteKeccak = 0x01
)

// sponge absorbs data into a fresh state at the given rate (in bytes),
// applies multi-rate padding with the domain suffix and squeezes size bytes.
// rate must be a multiple of 8 in (0, 200).
func sponge(rate int, data []byte, suffix byte, size int) []byte {
	if rate <= 0 || rate >= stateSize || rate%8 != 0 {
		panic("keccak: invalid sponge rate")
	}

	var a [25]uint64

	for len(data) >= rate {
		xorIn(&a, data[:rate])
		keccakF1600(&a)
		data = data[rate:]
	}

	pad(&a, data, rate, suffix)
	keccakF1600(&a)

	return squeeze(&a, rate, size)
}

// xorIn XORs block into the leading lanes of a, little-endian.
func xorIn(a *[25]uint64, block []byte) {
	n := len(block) / 8
	for i := 0; i < n; i++ {
		a[i] ^= binary.LittleEndian.Uint64(block[8*i:])
	}
	for i := n * 8; i < len(block); i++ {
		xorByte(a, i, block[i])
	}
}

// xorByte XORs v into byte position pos of the state.
func xorByte(a *[25]uint64, pos int, v byte) {
	a[pos/8] ^= uint64(v) << (8 * uint(pos%8))
}

// pad absorbs the final partial block (len(tail) < rate) together with the
// domain suffix and the closing 0x80 bit. When both land on the last byte of
// the block they are combined by XOR.
func pad(a *[25]uint64, tail []byte, rate int, suffix byte) {
	xorIn(a, tail)
	xorByte(a, len(tail), suffix)
	xorByte(a, rate-1, 0x80)
}

// squeeze reads size bytes out of a, permuting between rate-sized chunks.
func squeeze(a *[25]uint64, rate, size int) []byte {
	out := make([]byte, 0, size+rate)
	var lane [8]byte
	for {
		for i := 0; i < rate/8; i++ {
			binary.LittleEndian.PutUint64(lane[:], a[i])
			out = append(out, lane[:]...)
		}
		if len(out) >= size {
			return out[:size]
		}
		keccakF1600(a)
	}
}
