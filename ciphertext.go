package okamotouchiyama

import (
	"fmt"
	"math/big"
)

// Ciphertext is an opaque wrapper around a single element of Z/nZ. Its only
// supported operations are construction, equality, and combination through
// PublicKey's homomorphic methods; no arithmetic is exposed directly.
type Ciphertext struct {
	C *big.Int
}

// NewCiphertext wraps a raw value as a Ciphertext without validating it
// against any particular public key. Callers constructing ciphertexts from
// untrusted material (e.g. after PEM decoding) are responsible for any
// further validation they need.
func NewCiphertext(c *big.Int) *Ciphertext {
	return &Ciphertext{C: new(big.Int).Set(c)}
}

// Equal reports whether two ciphertexts wrap the same integer.
func (c *Ciphertext) Equal(other *Ciphertext) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.C.Cmp(other.C) == 0
}

func (c *Ciphertext) String() string {
	return fmt.Sprintf("%x", c.C)
}
