package secp256k1

// Serialized public key prefixes and lengths
const (
	ECCompressedEven = 0x02
	ECCompressedOdd  = 0x03
	ECUncompressed   = 0x04

	PubKeyBytesLenCompressed   = 33
	PubKeyBytesLenUncompressed = 65
)

// PublicKey is a secp256k1 public key: a point on the curve other than the
// identity. Use pointers; the value holds big.Int state.
type PublicKey struct {
	point GroupElementAffine
}

// Point returns a copy of the underlying curve point.
func (pk *PublicKey) Point() *GroupElementAffine {
	p := &GroupElementAffine{}
	p.set(&pk.point)
	return p
}

// mustBeValid panics on a key that did not come from ECPubkeyCreate or
// ECPubkeyParse, such as the zero value.
func (pk *PublicKey) mustBeValid() {
	if pk.point.infinity || !pk.point.isValid() {
		panic("secp256k1: public key is not a point on the curve")
	}
}

// SerializeUncompressed returns 0x04 || x || y.
func (pk *PublicKey) SerializeUncompressed() [PubKeyBytesLenUncompressed]byte {
	pk.mustBeValid()
	var out [PubKeyBytesLenUncompressed]byte
	out[0] = ECUncompressed
	pk.point.x.getB32(out[1:33])
	pk.point.y.getB32(out[33:65])
	return out
}

// SerializeCompressed returns (0x02 | parity(y)) || x.
func (pk *PublicKey) SerializeCompressed() [PubKeyBytesLenCompressed]byte {
	pk.mustBeValid()
	var out [PubKeyBytesLenCompressed]byte
	out[0] = ECCompressedEven
	if pk.point.y.isOdd() {
		out[0] = ECCompressedOdd
	}
	pk.point.x.getB32(out[1:33])
	return out
}

// IsEqual reports whether both keys hold the same point.
func (pk *PublicKey) IsEqual(other *PublicKey) bool {
	return pk.point.equal(&other.point)
}

// ECPubkeyParse parses a compressed or uncompressed public key into pubkey.
func ECPubkeyParse(pubkey *PublicKey, input []byte) error {
	var point GroupElementAffine

	switch len(input) {
	case PubKeyBytesLenCompressed:
		if input[0] != ECCompressedEven && input[0] != ECCompressedOdd {
			return makeError(ErrPubKeyInvalidFormat, "invalid compressed public key prefix")
		}

		var x FieldElement
		if !x.setB32(input[1:33]) {
			return makeError(ErrPubKeyXTooBig, "public key x coordinate is not less than the field prime")
		}

		odd := input[0] == ECCompressedOdd
		if !point.setXOVar(&x, odd) {
			return makeError(ErrPubKeyNotOnCurve, "no point on the curve has this x coordinate")
		}

	case PubKeyBytesLenUncompressed:
		if input[0] != ECUncompressed {
			return makeError(ErrPubKeyInvalidFormat, "invalid uncompressed public key prefix")
		}

		var x, y FieldElement
		if !x.setB32(input[1:33]) {
			return makeError(ErrPubKeyXTooBig, "public key x coordinate is not less than the field prime")
		}
		if !y.setB32(input[33:65]) {
			return makeError(ErrPubKeyYTooBig, "public key y coordinate is not less than the field prime")
		}

		point.setXY(&x, &y)
		if !point.isValid() {
			return makeError(ErrPubKeyNotOnCurve, "public key not on curve")
		}

	default:
		return makeError(ErrPubKeyInvalidLen, "public key must be 33 or 65 bytes")
	}

	pubkey.point.set(&point)
	return nil
}

// ParsePubKey parses a compressed or uncompressed public key.
func ParsePubKey(input []byte) (*PublicKey, error) {
	pk := &PublicKey{}
	if err := ECPubkeyParse(pk, input); err != nil {
		return nil, err
	}
	return pk, nil
}
