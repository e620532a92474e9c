// Package eip55 implements the mixed-case checksum encoding of Ethereum
// addresses described in EIP-55.
package eip55

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aujl/eth-from-bash/keccak"
	"github.com/aujl/eth-from-bash/secp256k1"
)

var (
	// ErrInvalidHex is returned when an address contains a non-hex character.
	ErrInvalidHex = errors.New("address is not hex")

	// ErrTooLong is returned when an address has more hex digits than a
	// Keccak-256 digest has nibbles.
	ErrTooLong = errors.New("address longer than 64 hex digits")
)

// AddressLength is the length of an Ethereum address in bytes.
const AddressLength = 20

// Checksum re-cases address according to EIP-55. A single optional 0x or
// 0X prefix is stripped and the result always carries 0x. Each letter a-f is
// upper-cased when the matching nibble of keccak256(lower-cased address) is
// 8 or more; digits are left alone.
//
// Up to 64 hex digits are accepted; Ethereum addresses have 40.
func Checksum(address string) (string, error) {
	body := address
	if len(body) >= 2 && body[0] == '0' && (body[1] == 'x' || body[1] == 'X') {
		body = body[2:]
	}
	if i := strings.IndexFunc(body, func(r rune) bool { return !isHexDigit(r) }); i >= 0 {
		r, _ := utf8.DecodeRuneInString(body[i:])
		return "", fmt.Errorf("%w: character %q at offset %d", ErrInvalidHex, r, i)
	}
	if len(body) > 2*keccak.Size {
		return "", fmt.Errorf("%w: %d digits", ErrTooLong, len(body))
	}

	lower := strings.ToLower(body)
	hash := keccak.Sum256([]byte(lower))

	out := []byte("0x" + lower)
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c < 'a' || c > 'f' {
			continue
		}
		if nibble(hash[:], i) >= 8 {
			out[i+2] = c - 'a' + 'A'
		}
	}
	return string(out), nil
}

// IsValid reports whether address is hex and already in its EIP-55 form.
// The 0x prefix is required.
func IsValid(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}
	sum, err := Checksum(address)
	return err == nil && sum == address
}

// AddressFromPublicKey returns the checksummed Ethereum address of an
// uncompressed secp256k1 public key: the last 20 bytes of keccak256(x || y).
func AddressFromPublicKey(uncompressed [secp256k1.PubKeyBytesLenUncompressed]byte) (string, error) {
	if uncompressed[0] != secp256k1.ECUncompressed {
		return "", fmt.Errorf("public key prefix 0x%02x is not uncompressed", uncompressed[0])
	}
	hash := keccak.Sum256(uncompressed[1:])
	return Checksum(fmt.Sprintf("%x", hash[len(hash)-AddressLength:]))
}

// nibble returns the i-th hex digit of b, most significant first.
func nibble(b []byte, i int) byte {
	v := b[i/2]
	if i%2 == 0 {
		return v >> 4
	}
	return v & 0x0f
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
