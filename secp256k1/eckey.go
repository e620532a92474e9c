package secp256k1

import (
	"crypto/rand"
	"fmt"
)

// SeckeyBytesLen is the length of a serialized secret key.
const SeckeyBytesLen = 32

// ECSeckeyVerify verifies that a 32-byte array is a valid secret key
func ECSeckeyVerify(seckey []byte) bool {
	if len(seckey) != SeckeyBytesLen {
		return false
	}

	var scalar Scalar
	return scalar.setB32Seckey(seckey)
}

// ECSeckeyGenerate generates a new random secret key
func ECSeckeyGenerate() ([]byte, error) {
	seckey := make([]byte, SeckeyBytesLen)
	for {
		if _, err := rand.Read(seckey); err != nil {
			return nil, err
		}

		if ECSeckeyVerify(seckey) {
			return seckey, nil
		}
	}
}

// parseSeckey decodes a big-endian secret key, rejecting it before any curve
// arithmetic when the length or range is wrong.
func parseSeckey(seckey []byte) (*Scalar, error) {
	if len(seckey) != SeckeyBytesLen {
		return nil, makeError(ErrSeckeyInvalidLen,
			fmt.Sprintf("secret key must be %d bytes, got %d", SeckeyBytesLen, len(seckey)))
	}

	var s Scalar
	if !s.setB32Seckey(seckey) {
		return nil, makeError(ErrScalarOutOfRange, "secret key scalar out of range")
	}
	return &s, nil
}

// ECPubkeyCreate computes the public key for a secret key
func ECPubkeyCreate(pubkey *PublicKey, seckey []byte) error {
	k, err := parseSeckey(seckey)
	if err != nil {
		return err
	}

	p, err := ScalarBaseMul(k)
	if err != nil {
		return err
	}

	pubkey.point.set(p)
	return nil
}

// DerivePublicKey returns the compressed and uncompressed encodings of
// seckey*G. seckey is a 32-byte big-endian scalar in [1, n-1].
//
// The scalar multiplication is variable time; see ScalarMul.
func DerivePublicKey(seckey []byte) (compressed [PubKeyBytesLenCompressed]byte, uncompressed [PubKeyBytesLenUncompressed]byte, err error) {
	var pk PublicKey
	if err = ECPubkeyCreate(&pk, seckey); err != nil {
		return compressed, uncompressed, err
	}
	return pk.SerializeCompressed(), pk.SerializeUncompressed(), nil
}
