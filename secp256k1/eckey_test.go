package secp256k1

import (
	"bytes"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	genCompressed   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	genUncompressed = "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

func seckeyFromHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestECSeckeyVerify(t *testing.T) {
	validKey := bytes.Repeat([]byte{0x01}, 32)
	if !ECSeckeyVerify(validKey) {
		t.Error("valid key should verify")
	}

	if ECSeckeyVerify(make([]byte, 32)) {
		t.Error("zero key should not verify")
	}

	if ECSeckeyVerify(validKey[:31]) {
		t.Error("wrong length should not verify")
	}

	order := seckeyFromHex(t, GroupOrder)
	if ECSeckeyVerify(order) {
		t.Error("key equal to the group order should not verify")
	}
}

func TestECSeckeyGenerate(t *testing.T) {
	key, err := ECSeckeyGenerate()
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	if len(key) != 32 {
		t.Errorf("key length should be 32, got %d", len(key))
	}
	if !ECSeckeyVerify(key) {
		t.Error("generated key should be valid")
	}
}

func TestDerivePublicKeyVectors(t *testing.T) {
	testCases := []struct {
		name         string
		seckey       string
		compressed   string
		uncompressed string
	}{
		{
			name:         "one",
			seckey:       "0000000000000000000000000000000000000000000000000000000000000001",
			compressed:   genCompressed,
			uncompressed: genUncompressed,
		},
		{
			name:         "two",
			seckey:       "0000000000000000000000000000000000000000000000000000000000000002",
			compressed:   "02" + twoGX,
			uncompressed: "04" + twoGX + twoGY,
		},
		{
			name:         "three",
			seckey:       "0000000000000000000000000000000000000000000000000000000000000003",
			compressed:   "02" + threeGX,
			uncompressed: "04" + threeGX + threeGY,
		},
		{
			name:       "n_minus_one",
			seckey:     "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140",
			compressed: "0379be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
			uncompressed: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
				"b7c52588d95c3b9aa25b0403f1eef75702e84bb7597aabe663b82f6f04ef2777",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, u, err := DerivePublicKey(seckeyFromHex(t, tc.seckey))
			if err != nil {
				t.Fatalf("DerivePublicKey: %v", err)
			}
			if got := hex.EncodeToString(c[:]); got != tc.compressed {
				t.Errorf("compressed = %s, want %s", got, tc.compressed)
			}
			if got := hex.EncodeToString(u[:]); got != tc.uncompressed {
				t.Errorf("uncompressed = %s, want %s", got, tc.uncompressed)
			}
		})
	}
}

func TestDerivePublicKeyErrors(t *testing.T) {
	testCases := []struct {
		name   string
		seckey []byte
		kind   ErrorKind
	}{
		{"empty", nil, ErrSeckeyInvalidLen},
		{"short", make([]byte, 31), ErrSeckeyInvalidLen},
		{"long", append(make([]byte, 32), 0x01), ErrSeckeyInvalidLen},
		{"zero", make([]byte, 32), ErrScalarOutOfRange},
		{"order", seckeyFromHex(t, GroupOrder), ErrScalarOutOfRange},
		{"all_ff", bytes.Repeat([]byte{0xff}, 32), ErrScalarOutOfRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, u, err := DerivePublicKey(tc.seckey)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("err = %v, want %v", err, tc.kind)
			}
			var e Error
			if !errors.As(err, &e) || e.Description == "" {
				t.Errorf("error should be a described secp256k1.Error, got %T", err)
			}
			if c != [33]byte{} || u != [65]byte{} {
				t.Error("outputs should be zero on error")
			}
		})
	}
}

func TestDerivePublicKeyMatchesReferences(t *testing.T) {
	for i := 0; i < 32; i++ {
		seckey, err := ECSeckeyGenerate()
		if err != nil {
			t.Fatal(err)
		}

		c, u, err := DerivePublicKey(seckey)
		if err != nil {
			t.Fatalf("DerivePublicKey(%x): %v", seckey, err)
		}

		_, btcPub := btcec.PrivKeyFromBytes(seckey)
		if !bytes.Equal(c[:], btcPub.SerializeCompressed()) {
			t.Errorf("compressed mismatch with btcec for %x", seckey)
		}
		if !bytes.Equal(u[:], btcPub.SerializeUncompressed()) {
			t.Errorf("uncompressed mismatch with btcec for %x", seckey)
		}

		dcrPub := dcrsecp.PrivKeyFromBytes(seckey).PubKey()
		if !bytes.Equal(u[:], dcrPub.SerializeUncompressed()) {
			t.Errorf("uncompressed mismatch with decred for %x", seckey)
		}
	}
}

func TestDerivePublicKeyConcurrent(t *testing.T) {
	keys := make([][]byte, 16)
	wants := make([][65]byte, len(keys))
	for i := range keys {
		k, err := ECSeckeyGenerate()
		if err != nil {
			t.Fatal(err)
		}
		keys[i] = k
		_, wants[i], err = DerivePublicKey(k)
		if err != nil {
			t.Fatal(err)
		}
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var failures int
	for i := range keys {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, u, err := DerivePublicKey(keys[i])
			if err != nil || u != wants[i] {
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	if failures != 0 {
		t.Fatalf("%d concurrent derivations disagreed with sequential results", failures)
	}
}

func BenchmarkDerivePublicKey(b *testing.B) {
	seckey := bytes.Repeat([]byte{0x5a}, 32)
	for i := 0; i < b.N; i++ {
		if _, _, err := DerivePublicKey(seckey); err != nil {
			b.Fatal(err)
		}
	}
}
