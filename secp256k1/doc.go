// Package secp256k1 derives secp256k1 public keys from secret scalars.
//
// Field and point arithmetic are written out over math/big in affine
// coordinates: inversion by Fermat's little theorem, the textbook chord and
// tangent formulas, and a binary double-and-add scalar multiplication.
// Nothing here is constant time. See ScalarMul before handing it a secret
// whose timing could be observed by an attacker.
//
// There is no signing and no other curve. Every function allocates its own
// state, so concurrent calls on distinct inputs are safe.
package secp256k1
