// Package selftest checks the Keccak and secp256k1 engines against fixed
// known answers. The vectors are literals, not values recomputed by the code
// under test.
package selftest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/aujl/eth-from-bash/keccak"
	"github.com/aujl/eth-from-bash/secp256k1"
)

// SuccessToken is printed by callers when Run succeeds.
const SuccessToken = "ok"

// MismatchError reports a computed value that disagrees with a known answer.
type MismatchError struct {
	Vector string
	Got    string
	Want   string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("self-test failed for %s: %s != %s", e.Vector, e.Got, e.Want)
}

// Run checks both engines. The Keccak and curve groups run concurrently;
// the first failure is returned and names the offending vector.
func Run() error {
	var g errgroup.Group
	g.Go(func() error { return checkKeccak(keccakVectors) })
	g.Go(func() error { return checkCurve(curveKnownAnswers) })
	return g.Wait()
}

func checkKeccak(vectors []KeccakVector) error {
	for _, v := range vectors {
		msg, err := hex.DecodeString(v.InputHex)
		if err != nil {
			return fmt.Errorf("vector %s: %w", v.Name, err)
		}

		digest := keccak.Sum256(msg)
		if got := hex.EncodeToString(digest[:]); got != v.DigestHex {
			return &MismatchError{Vector: v.Name, Got: got, Want: v.DigestHex}
		}

		var h keccak.Hasher
		h.Write(msg)
		streamed := h.Sum256()
		if got := hex.EncodeToString(streamed[:]); got != v.DigestHex {
			return &MismatchError{Vector: v.Name + "/hasher", Got: got, Want: v.DigestHex}
		}
	}
	return nil
}

func checkCurve(want curveVectors) error {
	// 1*G = G
	p, err := secp256k1.ScalarBaseMul(secp256k1.ScalarFromUint64(1))
	if err != nil {
		return unexpected("scalar_mul_one", err)
	}
	if got := pointHex(p); got != want.generator {
		return &MismatchError{Vector: "scalar_mul_one", Got: got, Want: want.generator}
	}

	// 2*G
	p, err = secp256k1.ScalarBaseMul(secp256k1.ScalarFromUint64(2))
	if err != nil {
		return unexpected("scalar_mul_two", err)
	}
	if got := pointHex(p); got != want.double {
		return &MismatchError{Vector: "scalar_mul_two", Got: got, Want: want.double}
	}

	// DerivePublicKey(1) encodes G
	one, _ := hex.DecodeString(scalarOneHex)
	c, u, err := secp256k1.DerivePublicKey(one)
	if err != nil {
		return unexpected("derive_pub_one", err)
	}
	if got := hex.EncodeToString(c[:]); got != want.generatorCompressed {
		return &MismatchError{Vector: "derive_pub_one/compressed", Got: got, Want: want.generatorCompressed}
	}
	if got := hex.EncodeToString(u[:]); got != want.generatorUncompressed {
		return &MismatchError{Vector: "derive_pub_one/uncompressed", Got: got, Want: want.generatorUncompressed}
	}

	// 0 and n are rejected
	order, _ := hex.DecodeString(secp256k1.GroupOrder)
	for name, k := range map[string][]byte{
		"reject_zero":  make([]byte, 32),
		"reject_order": order,
	} {
		if _, _, err := secp256k1.DerivePublicKey(k); !errors.Is(err, secp256k1.ErrScalarOutOfRange) {
			return &MismatchError{Vector: name, Got: fmt.Sprintf("%v", err), Want: secp256k1.ErrScalarOutOfRange.Error()}
		}
		if _, err := secp256k1.ScalarBaseMul(secp256k1.NewScalar(k)); !errors.Is(err, secp256k1.ErrScalarOutOfRange) {
			return &MismatchError{Vector: name + "/scalar_mul", Got: fmt.Sprintf("%v", err), Want: secp256k1.ErrScalarOutOfRange.Error()}
		}
	}

	return nil
}

func unexpected(vector string, err error) error {
	return &MismatchError{Vector: vector, Got: "error: " + err.Error(), Want: "success"}
}

func pointHex(p *secp256k1.GroupElementAffine) string {
	if p.IsInfinity() {
		return "infinity"
	}
	x, y := p.XBytes(), p.YBytes()
	return hex.EncodeToString(bytes.Join([][]byte{x[:], y[:]}, nil))
}
