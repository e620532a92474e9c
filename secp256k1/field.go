package secp256k1

import "math/big"

// Field prime: 2^256 - 2^32 - 977
const FieldPrime = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"

var (
	fieldP = mustParseHex(FieldPrime)

	// p - 2, the Fermat inversion exponent
	fieldPMinus2 = new(big.Int).Sub(fieldP, big.NewInt(2))

	// (p + 1) / 4, the square root exponent (p = 3 mod 4)
	fieldSqrtExp = new(big.Int).Rsh(new(big.Int).Add(fieldP, big.NewInt(1)), 2)

	curveB = big.NewInt(7)
)

func mustParseHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("secp256k1: bad constant " + s)
	}
	return v
}

// FieldElement represents an element of the secp256k1 base field.
// Values are always kept fully reduced into [0, p).
type FieldElement struct {
	n big.Int
}

// setB32 sets r from a 32-byte big-endian value. It reports false, leaving
// r unchanged, when the value is not less than p.
func (r *FieldElement) setB32(b []byte) bool {
	if len(b) != 32 {
		panic("field element must be 32 bytes")
	}
	var v big.Int
	v.SetBytes(b)
	if v.Cmp(fieldP) >= 0 {
		return false
	}
	r.n.Set(&v)
	return true
}

// getB32 writes r as 32 big-endian bytes.
func (r *FieldElement) getB32(b []byte) {
	if len(b) != 32 {
		panic("output buffer must be 32 bytes")
	}
	r.n.FillBytes(b)
}

func (r *FieldElement) setInt(a int64) {
	r.n.SetInt64(a)
	r.n.Mod(&r.n, fieldP)
}

func (r *FieldElement) set(a *FieldElement) {
	r.n.Set(&a.n)
}

func (r *FieldElement) isZero() bool {
	return r.n.Sign() == 0
}

func (r *FieldElement) isOdd() bool {
	return r.n.Bit(0) == 1
}

func (r *FieldElement) equal(a *FieldElement) bool {
	return r.n.Cmp(&a.n) == 0
}

// add sets r = a + b mod p
func (r *FieldElement) add(a, b *FieldElement) {
	r.n.Add(&a.n, &b.n)
	r.n.Mod(&r.n, fieldP)
}

// sub sets r = a - b mod p
func (r *FieldElement) sub(a, b *FieldElement) {
	r.n.Sub(&a.n, &b.n)
	r.n.Mod(&r.n, fieldP)
}

// negate sets r = -a mod p
func (r *FieldElement) negate(a *FieldElement) {
	r.n.Neg(&a.n)
	r.n.Mod(&r.n, fieldP)
}

// mul sets r = a * b mod p
func (r *FieldElement) mul(a, b *FieldElement) {
	r.n.Mul(&a.n, &b.n)
	r.n.Mod(&r.n, fieldP)
}

// mulInt sets r = a * k mod p
func (r *FieldElement) mulInt(a *FieldElement, k int64) {
	r.n.Mul(&a.n, big.NewInt(k))
	r.n.Mod(&r.n, fieldP)
}

// sqr sets r = a^2 mod p
func (r *FieldElement) sqr(a *FieldElement) {
	r.mul(a, a)
}

// inv sets r = a^(p-2) mod p, the inverse of a by Fermat's little theorem.
// a must be non-zero; every call site guarantees this, so a zero input is a
// bug and panics.
func (r *FieldElement) inv(a *FieldElement) {
	if a.isZero() {
		panic("secp256k1: inverse of zero field element")
	}
	r.n.Exp(&a.n, fieldPMinus2, fieldP)
}

// sqrt sets r to a square root of a and reports whether one exists.
// r is left unchanged when a is not a quadratic residue.
func (r *FieldElement) sqrt(a *FieldElement) bool {
	var s, check FieldElement
	s.n.Exp(&a.n, fieldSqrtExp, fieldP)
	check.sqr(&s)
	if !check.equal(a) {
		return false
	}
	r.set(&s)
	return true
}
