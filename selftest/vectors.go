package selftest

import (
	"encoding/json"
	"slices"
	"strings"
)

// KeccakVector is a Keccak-256 known answer. Fields are declared in key
// order so the JSON dump has sorted keys.
type KeccakVector struct {
	DigestHex string `json:"digest_hex"`
	InputHex  string `json:"input_hex"`
	Name      string `json:"name"`
}

var keccakVectors = []KeccakVector{
	{
		Name:      "empty",
		InputHex:  "",
		DigestHex: "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470",
	},
	{
		Name:      "abc",
		InputHex:  "616263",
		DigestHex: "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45",
	},
	{
		Name:      "quickfox",
		InputHex:  "54686520717569636b2062726f776e20666f78206a756d7073206f76657220746865206c617a7920646f67",
		DigestHex: "4d741b6f1eb29cb2a9b9911c82f56fa8d73b04959d3d9d222895df6c0b28aa15",
	},
	{
		Name:      "nist_a3_200",
		InputHex:  strings.Repeat("a3", 200),
		DigestHex: "3a57666b048777f2c953dc4456f45a2588e1cb6f2da760122d530ac2ce607d4a",
	},
}

// KeccakVectors returns a copy of the Keccak-256 known answers.
func KeccakVectors() []KeccakVector {
	return slices.Clone(keccakVectors)
}

// KeccakVectorsJSON returns the Keccak-256 known answers as compact JSON.
func KeccakVectorsJSON() ([]byte, error) {
	return json.Marshal(keccakVectors)
}

// curveVectors holds the secp256k1 known answers as lower-case hex. Points
// are x || y.
type curveVectors struct {
	generator             string
	double                string
	generatorCompressed   string
	generatorUncompressed string
}

// scalarOneHex is the 32-byte encoding of the scalar 1.
const scalarOneHex = "0000000000000000000000000000000000000000000000000000000000000001"

var curveKnownAnswers = curveVectors{
	generator: "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",

	// SEC1 doubling of G
	double: "c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5" +
		"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a",

	generatorCompressed: "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",

	generatorUncompressed: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
}
