package okamotouchiyama

import "github.com/pkg/errors"

// Sentinel errors identifying each failure kind this package can surface.
// Callers should compare against these with errors.Is; operations wrap them
// with github.com/pkg/errors to attach context without losing the sentinel.
var (
	// ErrMessageTooLarge is returned by Encrypt when the plaintext is not in
	// [0, n).
	ErrMessageTooLarge = errors.New("okamotouchiyama: message is larger than public key modulus")

	// ErrCipherTooLarge is returned by HomomorphicAdd and HomomorphicSum when
	// a ciphertext argument equals n, the historical malformed-input guard.
	ErrCipherTooLarge = errors.New("okamotouchiyama: ciphertext is not smaller than public key modulus")

	// ErrPemDecoding is returned when a PEM envelope or its DER payload
	// cannot be parsed: missing BEGIN/END tags, malformed base64, a
	// truncated SEQUENCE, or a missing INTEGER field.
	ErrPemDecoding = errors.New("okamotouchiyama: malformed PEM or DER encoding")

	// ErrInsufficientEntropy is returned when the underlying CSPRNG or
	// probable-prime generator fails to produce a result.
	ErrInsufficientEntropy = errors.New("okamotouchiyama: insufficient entropy to generate key material")

	// ErrGeneratorNotFound is returned when the bounded search for a
	// generator g with g^(p-1) mod p^2 != 1 is exhausted.
	ErrGeneratorNotFound = errors.New("okamotouchiyama: no usable generator found within attempt bound")

	// ErrDecryptionFailure is returned when decryption encounters a
	// mathematically inconsistent private key or ciphertext: the modular
	// inverse of L(g_d) does not exist, or a division meant to be exact by
	// construction left a non-zero remainder.
	ErrDecryptionFailure = errors.New("okamotouchiyama: decryption failed on malformed key or ciphertext")
)
