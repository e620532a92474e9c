package secp256k1

// ScalarMul computes k*P by binary double-and-add, walking the bits of k
// from least to most significant.
//
// This is NOT constant time. The number of additions and the add/double
// pattern follow the bits of k, so the running time leaks the scalar. Only
// call it with secrets that are never attacker-influenced and never behind
// an interface where per-call timing can be observed (a network request per
// scalar, for example). Callers own that boundary.
//
// k must lie in [1, n-1]; anything else returns ErrScalarOutOfRange before
// any arithmetic is done. P must be on the curve and not the identity.
// Reaching the identity with a valid k means the constants or the arithmetic
// are broken, and ScalarMul panics.
func ScalarMul(k *Scalar, p *GroupElementAffine) (*GroupElementAffine, error) {
	if !k.IsValid() {
		return nil, makeError(ErrScalarOutOfRange, "scalar must be in [1, n-1]")
	}
	if p.infinity || !p.isValid() {
		panic("secp256k1: scalar multiplication of an invalid point")
	}

	r := NewGroupElementAffine()
	ecmultSimple(r, k, p)

	if r.infinity {
		panic("secp256k1: scalar multiplication reached the point at infinity")
	}
	return r, nil
}

// ScalarBaseMul computes k*G. See ScalarMul for the timing caveat.
func ScalarBaseMul(k *Scalar) (*GroupElementAffine, error) {
	return ScalarMul(k, Generator())
}

// ecmultSimple sets r = k*p. It performs no range checks.
func ecmultSimple(r *GroupElementAffine, k *Scalar, p *GroupElementAffine) {
	r.setInfinity()

	var addend GroupElementAffine
	addend.set(p)

	n := k.bitLen()
	for i := 0; i < n; i++ {
		if k.bit(i) != 0 {
			r.add(r, &addend)
		}
		if i+1 < n {
			addend.double(&addend)
		}
	}
}
