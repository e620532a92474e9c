package secp256k1

import (
	"math/big"
	"testing"
)

func TestScalarSetB32(t *testing.T) {
	nMinus1 := new(big.Int).Sub(groupN, big.NewInt(1))
	nPlus1 := new(big.Int).Add(groupN, big.NewInt(1))

	testCases := []struct {
		name     string
		value    *big.Int
		overflow bool
		valid    bool
	}{
		{"zero", big.NewInt(0), false, false},
		{"one", big.NewInt(1), false, true},
		{"n_minus_one", nMinus1, false, true},
		{"n", groupN, true, false},
		{"n_plus_one", nPlus1, true, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var b [32]byte
			tc.value.FillBytes(b[:])

			var s Scalar
			if got := s.setB32(b[:]); got != tc.overflow {
				t.Errorf("overflow = %v, want %v", got, tc.overflow)
			}
			if got := s.setB32Seckey(b[:]); got != tc.valid {
				t.Errorf("setB32Seckey = %v, want %v", got, tc.valid)
			}
			if got := s.IsValid(); got != tc.valid {
				t.Errorf("IsValid = %v, want %v", got, tc.valid)
			}
			if out := s.Bytes(); out != b {
				t.Errorf("Bytes() = %x, want %x (no reduction)", out, b)
			}
		})
	}
}

func TestScalarBits(t *testing.T) {
	s := ScalarFromUint64(0b1011)
	if s.bitLen() != 4 {
		t.Fatalf("bitLen = %d, want 4", s.bitLen())
	}
	want := []uint{1, 1, 0, 1}
	for i, w := range want {
		if got := s.bit(i); got != w {
			t.Errorf("bit(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestScalarFromBigIntPanics(t *testing.T) {
	for _, v := range []*big.Int{big.NewInt(-1), new(big.Int).Lsh(big.NewInt(1), 256)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("ScalarFromBigInt(%v) should panic", v)
				}
			}()
			ScalarFromBigInt(v)
		}()
	}
}

func TestNewScalarWrongLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewScalar with 31 bytes should panic")
		}
	}()
	NewScalar(make([]byte, 31))
}
