package secp256k1

// ErrorKind identifies a kind of error. It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrSeckeyInvalidLen is returned when a secret key is not exactly 32
	// bytes.
	ErrSeckeyInvalidLen = ErrorKind("ErrSeckeyInvalidLen")

	// ErrScalarOutOfRange is returned when a scalar is zero or not less than
	// the group order.
	ErrScalarOutOfRange = ErrorKind("ErrScalarOutOfRange")

	// ErrPubKeyInvalidLen is returned when a serialized public key is neither
	// 33 nor 65 bytes.
	ErrPubKeyInvalidLen = ErrorKind("ErrPubKeyInvalidLen")

	// ErrPubKeyInvalidFormat is returned when the prefix byte of a serialized
	// public key does not match its length.
	ErrPubKeyInvalidFormat = ErrorKind("ErrPubKeyInvalidFormat")

	// ErrPubKeyXTooBig is returned when the x coordinate is not less than the
	// field prime.
	ErrPubKeyXTooBig = ErrorKind("ErrPubKeyXTooBig")

	// ErrPubKeyYTooBig is returned when the y coordinate is not less than the
	// field prime.
	ErrPubKeyYTooBig = ErrorKind("ErrPubKeyYTooBig")

	// ErrPubKeyNotOnCurve is returned when the decoded point does not satisfy
	// y^2 = x^3 + 7.
	ErrPubKeyNotOnCurve = ErrorKind("ErrPubKeyNotOnCurve")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 keys and scalars. It has
// full support for errors.Is and errors.As.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
