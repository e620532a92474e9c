package bip39

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	gobip39 "github.com/tyler-smith/go-bip39"
)

const abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestDeriveSeedVectors(t *testing.T) {
	testCases := []struct {
		name       string
		mnemonic   string
		passphrase string
		want       string
	}{
		{
			name:       "trezor",
			mnemonic:   abandonAbout,
			passphrase: "TREZOR",
			want: "c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
		},
		{
			name:     "no_passphrase",
			mnemonic: abandonAbout,
			want: "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seed := DeriveSeed(tc.mnemonic, tc.passphrase)
			require.Equal(t, tc.want, hex.EncodeToString(seed[:]))
		})
	}
}

func TestDeriveSeedMatchesGoBip39(t *testing.T) {
	for _, pass := range []string{"", "TREZOR", "correct horse battery staple"} {
		for _, m := range []string{abandonAbout, "not a real mnemonic at all", ""} {
			seed := DeriveSeed(m, pass)
			require.Equal(t, gobip39.NewSeed(m, pass), seed[:], "mnemonic %q pass %q", m, pass)
		}
	}
}

func TestValidateMnemonic(t *testing.T) {
	require.NoError(t, ValidateMnemonic(abandonAbout))

	// Bad checksum: last word changed
	bad := strings.Replace(abandonAbout, "about", "abandon", 1)
	require.ErrorIs(t, ValidateMnemonic(bad), ErrInvalidMnemonic)

	require.ErrorIs(t, ValidateMnemonic("abandon abandon"), ErrInvalidMnemonic)
	require.ErrorIs(t, ValidateMnemonic(strings.Replace(abandonAbout, "about", "zzzz", 1)), ErrInvalidMnemonic)
}

func TestEntropyChecksum(t *testing.T) {
	cs, err := EntropyChecksum(make([]byte, 16))
	require.NoError(t, err)
	require.Equal(t, byte(0x3), cs)

	cs, err = EntropyChecksum(bytes.Repeat([]byte{0xff}, 16))
	require.NoError(t, err)
	require.Equal(t, byte(0x5), cs)

	for _, n := range []int{0, 15, 17, 33, 36} {
		_, err := EntropyChecksum(make([]byte, n))
		require.ErrorIs(t, err, ErrEntropyLength, "length %d", n)
	}
}

func TestWordIndices(t *testing.T) {
	idx, err := WordIndices(make([]byte, 16))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 3}, idx)

	// zoo x11 + wrong
	idx, err = WordIndices(bytes.Repeat([]byte{0xff}, 16))
	require.NoError(t, err)
	require.Len(t, idx, 12)
	require.Equal(t, 2037, idx[11])
	for _, v := range idx[:11] {
		require.Equal(t, 2047, v)
	}

	_, err = WordIndices(make([]byte, 10))
	require.ErrorIs(t, err, ErrEntropyLength)
}

func TestWordIndicesMatchGoBip39(t *testing.T) {
	words := gobip39.GetWordList()
	for _, size := range []int{128, 160, 192, 224, 256} {
		entropy, err := gobip39.NewEntropy(size)
		require.NoError(t, err)

		mnemonic, err := gobip39.NewMnemonic(entropy)
		require.NoError(t, err)

		idx, err := WordIndices(entropy)
		require.NoError(t, err)

		got := make([]string, len(idx))
		for i, v := range idx {
			got[i] = words[v]
		}
		require.Equal(t, mnemonic, strings.Join(got, " "))
		require.NoError(t, ValidateMnemonic(mnemonic))
	}
}
