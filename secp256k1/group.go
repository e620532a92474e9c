package secp256k1

const (
	// Generator point G of secp256k1
	generatorX = "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
	generatorY = "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"
)

// GroupElementAffine represents a group element in affine coordinates (x, y)
// or the point at infinity. When infinity is set the coordinates carry no
// meaning; the identity is never encoded as (0, 0). The zero value is the
// off-curve pair (0, 0), not a usable point: obtain elements from Generator,
// NewGroupElementAffine, ScalarMul or ParsePubKey.
type GroupElementAffine struct {
	x        FieldElement
	y        FieldElement
	infinity bool
}

// Generator returns a fresh copy of the base point G.
func Generator() *GroupElementAffine {
	g := &GroupElementAffine{}
	g.x.n.Set(mustParseHex(generatorX))
	g.y.n.Set(mustParseHex(generatorY))
	return g
}

// NewGroupElementAffine creates a new affine group element set to infinity
func NewGroupElementAffine() *GroupElementAffine {
	return &GroupElementAffine{infinity: true}
}

// setXY sets a group element to the point with given X and Y coordinates
func (r *GroupElementAffine) setXY(x, y *FieldElement) {
	r.x.set(x)
	r.y.set(y)
	r.infinity = false
}

// setXOVar sets a group element to the point with given X coordinate and Y oddness
func (r *GroupElementAffine) setXOVar(x *FieldElement, odd bool) bool {
	// y^2 = x^3 + 7
	var x3, y2, seven FieldElement
	x3.sqr(x)
	x3.mul(&x3, x)
	seven.setInt(7)
	y2.add(&x3, &seven)

	var y FieldElement
	if !y.sqrt(&y2) {
		return false
	}

	if y.isOdd() != odd {
		y.negate(&y)
	}

	r.setXY(x, &y)
	return true
}

// set copies a into r without sharing big.Int storage.
func (r *GroupElementAffine) set(a *GroupElementAffine) {
	r.x.set(&a.x)
	r.y.set(&a.y)
	r.infinity = a.infinity
}

// isInfinity returns true if the group element is the point at infinity
func (r *GroupElementAffine) isInfinity() bool {
	return r.infinity
}

// IsInfinity reports whether r is the identity element.
func (r *GroupElementAffine) IsInfinity() bool {
	return r.infinity
}

// isValid checks that the group element satisfies y^2 = x^3 + 7
func (r *GroupElementAffine) isValid() bool {
	if r.infinity {
		return true
	}

	var lhs, rhs, seven FieldElement
	lhs.sqr(&r.y)
	rhs.sqr(&r.x)
	rhs.mul(&rhs, &r.x)
	seven.n.Set(curveB)
	rhs.add(&rhs, &seven)
	return lhs.equal(&rhs)
}

// IsOnCurve reports whether r is the identity or a point on secp256k1.
func (r *GroupElementAffine) IsOnCurve() bool {
	return r.isValid()
}

// negate sets r to the negation of a (mirror around X axis)
func (r *GroupElementAffine) negate(a *GroupElementAffine) {
	if a.infinity {
		r.setInfinity()
		return
	}
	r.x.set(&a.x)
	r.y.negate(&a.y)
	r.infinity = false
}

// setInfinity sets the group element to the point at infinity
func (r *GroupElementAffine) setInfinity() {
	r.x.setInt(0)
	r.y.setInt(0)
	r.infinity = true
}

// equal checks if two affine group elements are equal
func (r *GroupElementAffine) equal(a *GroupElementAffine) bool {
	if r.infinity || a.infinity {
		return r.infinity == a.infinity
	}
	return r.x.equal(&a.x) && r.y.equal(&a.y)
}

// Equal reports whether r and a are the same group element.
func (r *GroupElementAffine) Equal(a *GroupElementAffine) bool {
	return r.equal(a)
}

// XBytes returns the x coordinate as 32 big-endian bytes. It panics on the
// point at infinity, which has no coordinates.
func (r *GroupElementAffine) XBytes() [32]byte {
	if r.infinity {
		panic("point at infinity has no coordinates")
	}
	var b [32]byte
	r.x.getB32(b[:])
	return b
}

// YBytes returns the y coordinate as 32 big-endian bytes. It panics on the
// point at infinity.
func (r *GroupElementAffine) YBytes() [32]byte {
	if r.infinity {
		panic("point at infinity has no coordinates")
	}
	var b [32]byte
	r.y.getB32(b[:])
	return b
}

// double sets r = 2*a
func (r *GroupElementAffine) double(a *GroupElementAffine) {
	r.add(a, a)
}

// add sets r = a + b. r may alias either input.
func (r *GroupElementAffine) add(a, b *GroupElementAffine) {
	if a.infinity {
		r.set(b)
		return
	}
	if b.infinity {
		r.set(a)
		return
	}

	// b = -a
	var ysum FieldElement
	ysum.add(&a.y, &b.y)
	if a.x.equal(&b.x) && ysum.isZero() {
		r.setInfinity()
		return
	}

	var m, num, den FieldElement
	if a.equal(b) {
		// m = 3*x1^2 / (2*y1); y1 != 0 here since y1 + y1 != 0
		num.sqr(&a.x)
		num.mulInt(&num, 3)
		den.mulInt(&a.y, 2)
	} else {
		// m = (y2 - y1) / (x2 - x1); x1 != x2 since the only other point
		// sharing x1 is -a, handled above
		num.sub(&b.y, &a.y)
		den.sub(&b.x, &a.x)
	}
	den.inv(&den)
	m.mul(&num, &den)

	// x3 = m^2 - x1 - x2
	var x3, y3 FieldElement
	x3.sqr(&m)
	x3.sub(&x3, &a.x)
	x3.sub(&x3, &b.x)

	// y3 = m*(x1 - x3) - y1
	y3.sub(&a.x, &x3)
	y3.mul(&m, &y3)
	y3.sub(&y3, &a.y)

	r.setXY(&x3, &y3)
}

// Add returns a + b as a new element. Both inputs must be the identity or
// on the curve; Add panics otherwise. The zero value is neither.
func Add(a, b *GroupElementAffine) *GroupElementAffine {
	if !a.isValid() || !b.isValid() {
		panic("secp256k1: addition of an invalid point")
	}
	r := NewGroupElementAffine()
	r.add(a, b)
	return r
}
