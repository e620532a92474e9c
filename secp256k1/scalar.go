package secp256k1

import "math/big"

// Group order (number of points on the curve)
const GroupOrder = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"

var groupN = mustParseHex(GroupOrder)

// Scalar is an unsigned 256-bit integer used as a multiplier of curve points.
// Unlike a field element it is never reduced: a value outside [1, n) is kept
// as is so that it can be rejected rather than silently wrapped.
type Scalar struct {
	v big.Int
}

// NewScalar creates a scalar from a 32-byte big-endian array.
func NewScalar(b32 []byte) *Scalar {
	if len(b32) != 32 {
		panic("input must be 32 bytes")
	}

	s := &Scalar{}
	s.setB32(b32)
	return s
}

// ScalarFromUint64 creates a scalar holding v.
func ScalarFromUint64(v uint64) *Scalar {
	s := &Scalar{}
	s.v.SetUint64(v)
	return s
}

// ScalarFromBigInt creates a scalar holding v. It panics on negative input
// and on values wider than 256 bits.
func ScalarFromBigInt(v *big.Int) *Scalar {
	if v.Sign() < 0 || v.BitLen() > 256 {
		panic("scalar must be a 256-bit unsigned integer")
	}
	s := &Scalar{}
	s.v.Set(v)
	return s
}

// setB32 sets a scalar from a 32-byte big-endian array and reports whether
// the value is not less than the group order.
func (r *Scalar) setB32(bin []byte) (overflow bool) {
	r.v.SetBytes(bin)
	return r.checkOverflow()
}

// setB32Seckey sets a scalar from a 32-byte array and returns true if it's a valid secret key
func (r *Scalar) setB32Seckey(bin []byte) bool {
	overflow := r.setB32(bin)
	return !overflow && !r.isZero()
}

// getB32 converts a scalar to a 32-byte big-endian array
func (r *Scalar) getB32(bin []byte) {
	if len(bin) != 32 {
		panic("output buffer must be 32 bytes")
	}
	r.v.FillBytes(bin)
}

// Bytes returns the scalar as 32 big-endian bytes.
func (r *Scalar) Bytes() [32]byte {
	var b [32]byte
	r.getB32(b[:])
	return b
}

// checkOverflow checks if the scalar is >= the group order
func (r *Scalar) checkOverflow() bool {
	return r.v.Cmp(groupN) >= 0
}

func (r *Scalar) isZero() bool {
	return r.v.Sign() == 0
}

// IsValid reports whether r lies in [1, n-1].
func (r *Scalar) IsValid() bool {
	return !r.isZero() && !r.checkOverflow()
}

// bitLen returns the position of the highest set bit plus one.
func (r *Scalar) bitLen() int {
	return r.v.BitLen()
}

// bit returns bit i of the scalar, counting from the least significant.
func (r *Scalar) bit(i int) uint {
	return r.v.Bit(i)
}
