// Package bip39 derives BIP-39 wallet seeds from mnemonic sentences and
// computes the entropy checksum that BIP-39 mnemonics carry.
package bip39

import (
	"crypto/sha512"
	"errors"
	"fmt"

	gobip39 "github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// SeedLength is the length of a derived seed in bytes.
	SeedLength = 64

	// Iterations is the PBKDF2 round count fixed by BIP-39.
	Iterations = 2048

	saltPrefix = "mnemonic"
)

// ErrInvalidMnemonic is returned by ValidateMnemonic for sentences that are
// not BIP-39 mnemonics.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// DeriveSeed returns PBKDF2-HMAC-SHA512(mnemonic, "mnemonic"+passphrase,
// 2048 rounds, 64 bytes).
//
// The mnemonic is used as given. It is not checked against the word list and
// no Unicode normalisation is applied; callers that need either should call
// ValidateMnemonic or normalise first.
func DeriveSeed(mnemonic, passphrase string) [SeedLength]byte {
	key := pbkdf2.Key([]byte(mnemonic), []byte(saltPrefix+passphrase), Iterations, SeedLength, sha512.New)
	return [SeedLength]byte(key)
}

// ValidateMnemonic checks the word count, the words against the English
// list and the embedded checksum.
func ValidateMnemonic(mnemonic string) error {
	if _, err := gobip39.EntropyFromMnemonic(mnemonic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMnemonic, err)
	}
	return nil
}
