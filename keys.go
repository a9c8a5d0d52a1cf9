package okamotouchiyama

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// PublicKey carries the Okamoto-Uchiyama public material (n, g, h) and is
// immutable once constructed. Equality is component-wise.
type PublicKey struct {
	N *big.Int
	G *big.Int
	H *big.Int
}

// NewPublicKey is a pure data constructor: it does not verify that n, g, and
// h are well-formed (e.g. that n factors as p^2*q for some prime p, q).
// Callers constructing a PublicKey from untrusted material must validate it
// externally.
func NewPublicKey(n, g, h *big.Int) *PublicKey {
	return &PublicKey{
		N: new(big.Int).Set(n),
		G: new(big.Int).Set(g),
		H: new(big.Int).Set(h),
	}
}

func (pk *PublicKey) String() string {
	return fmt.Sprintf("PublicKey{N: %v, G: %v, H: %v}", pk.N, pk.G, pk.H)
}

// Equal reports whether two public keys carry the same (n, g, h).
func (pk *PublicKey) Equal(other *PublicKey) bool {
	if pk == nil || other == nil {
		return pk == other
	}
	return pk.N.Cmp(other.N) == 0 &&
		pk.G.Cmp(other.G) == 0 &&
		pk.H.Cmp(other.H) == 0
}

// EncryptWithR encrypts m under this public key using the given randomness
// r directly, skipping the internal CSPRNG draw. Most callers want Encrypt;
// this exists for deterministic tests and for callers that source r from
// elsewhere (e.g. a distributed protocol).
//
// E(m, r) = (g^m * h^r) mod n
func (pk *PublicKey) EncryptWithR(m, r *big.Int) (*Ciphertext, error) {
	if m.Sign() < 0 || m.Cmp(pk.N) >= 0 {
		return nil, errors.Wrapf(ErrMessageTooLarge, "%v is out of [0, %v)", m, pk.N)
	}

	gm := new(big.Int).Exp(pk.G, m, pk.N)
	hr := new(big.Int).Exp(pk.H, r, pk.N)
	c := new(big.Int).Mod(new(big.Int).Mul(gm, hr), pk.N)
	return &Ciphertext{C: c}, nil
}

// Encrypt probabilistically encrypts plaintext m under this public key,
// drawing randomness from random (typically crypto/rand.Reader). Repeated
// calls with the same m produce different ciphertexts with overwhelming
// probability.
//
// The precondition is 0 <= m < n; the theoretical message space is actually
// [0, p), but p is secret to anyone holding only the public key, so only the
// weaker n-level bound is enforceable here.
func (pk *PublicKey) Encrypt(m *big.Int, random io.Reader) (*Ciphertext, error) {
	if random == nil {
		random = rand.Reader
	}
	if m.Sign() < 0 || m.Cmp(pk.N) >= 0 {
		return nil, errors.Wrapf(ErrMessageTooLarge, "%v is out of [0, %v)", m, pk.N)
	}

	upperBound := new(big.Int).Sub(pk.N, TWO)
	r, err := getRandomInRange(random, one, upperBound)
	if err != nil {
		return nil, err
	}

	return pk.EncryptWithR(m, r)
}

// HomomorphicAdd combines two ciphertexts into one that decrypts to the sum
// of their plaintexts modulo p:
//
//	D(HomomorphicAdd(E(a), E(b))) = (a + b) mod p
//
// It fails with ErrCipherTooLarge if either argument equals n, the
// historical malformed-input guard carried over from the reference
// implementation; it does not otherwise validate that its arguments are
// well-formed ciphertexts under pk.
func (pk *PublicKey) HomomorphicAdd(c1, c2 *Ciphertext) (*Ciphertext, error) {
	if c1.C.Cmp(pk.N) == 0 || c2.C.Cmp(pk.N) == 0 {
		return nil, errors.Wrap(ErrCipherTooLarge, "ciphertext equals public key modulus")
	}
	c := new(big.Int).Mod(new(big.Int).Mul(c1.C, c2.C), pk.N)
	return &Ciphertext{C: c}, nil
}

// HomomorphicSum combines an arbitrary number of ciphertexts into one that
// decrypts to the sum of their plaintexts modulo p. For an empty input it
// returns the constant ciphertext 1 (the identity of the underlying
// product), which happens to be a valid encryption of 0 only by
// coincidence — see DESIGN.md for the rationale behind this choice.
func (pk *PublicKey) HomomorphicSum(cs []*Ciphertext) (*Ciphertext, error) {
	accumulator := big.NewInt(1)
	for _, c := range cs {
		if c.C.Cmp(pk.N) == 0 {
			return nil, errors.Wrap(ErrCipherTooLarge, "ciphertext equals public key modulus")
		}
		accumulator = new(big.Int).Mod(new(big.Int).Mul(accumulator, c.C), pk.N)
	}
	return &Ciphertext{C: accumulator}, nil
}

// PrivateKey carries the public key plus the private material (p, q, p^2,
// g_d) needed to decrypt. It is immutable once constructed; its PublicKey
// field is a clone, not an alias, of whatever PublicKey was used to build
// it.
type PrivateKey struct {
	PublicKey
	Gd      *big.Int
	P       *big.Int
	Q       *big.Int
	PSquare *big.Int
}

// NewPrivateKey clones pk and the given p, q, computes p^2 = p*p and
// g_d = g^(p-1) mod p^2. No primality check is performed on p or q.
func NewPrivateKey(pk *PublicKey, p, q *big.Int) *PrivateKey {
	pSquare := new(big.Int).Mul(p, p)
	pMinusOne := new(big.Int).Sub(p, one)
	gd := new(big.Int).Exp(pk.G, pMinusOne, pSquare)

	return &PrivateKey{
		PublicKey: PublicKey{
			N: new(big.Int).Set(pk.N),
			G: new(big.Int).Set(pk.G),
			H: new(big.Int).Set(pk.H),
		},
		Gd:      gd,
		P:       new(big.Int).Set(p),
		Q:       new(big.Int).Set(q),
		PSquare: pSquare,
	}
}

// Equal reports whether two private keys carry the same public key and the
// same (g_d, p, q, p^2).
func (sk *PrivateKey) Equal(other *PrivateKey) bool {
	if sk == nil || other == nil {
		return sk == other
	}
	return sk.PublicKey.Equal(&other.PublicKey) &&
		sk.Gd.Cmp(other.Gd) == 0 &&
		sk.P.Cmp(other.P) == 0 &&
		sk.Q.Cmp(other.Q) == 0 &&
		sk.PSquare.Cmp(other.PSquare) == 0
}

// lFunction computes (x-1)/p, the isomorphism from {1 + k*p : k in Z/pZ}
// onto Z/pZ that the Okamoto-Uchiyama decryption rule relies on. It returns
// an error if the division is not exact, which indicates a malformed key
// or ciphertext upstream.
func lFunction(x, p *big.Int) (*big.Int, error) {
	numerator := new(big.Int).Sub(x, one)
	quotient, remainder := new(big.Int).QuoRem(numerator, p, new(big.Int))
	if remainder.Sign() != 0 {
		return nil, errors.Wrap(ErrDecryptionFailure, "non-exact division by p in L function")
	}
	return quotient, nil
}

// Decrypt recovers the plaintext m in [0, p) encrypted as c.
//
//  1. a := c^(p-1) mod p^2, which lies in 1 + pZ by construction.
//  2. L1 := L(a), L2 := L(g_d), both via lFunction.
//  3. m := (L1 * L2^-1) mod p.
func (sk *PrivateKey) Decrypt(c *Ciphertext) (*big.Int, error) {
	pMinusOne := new(big.Int).Sub(sk.P, one)
	a := new(big.Int).Exp(c.C, pMinusOne, sk.PSquare)

	l1, err := lFunction(a, sk.P)
	if err != nil {
		return nil, err
	}
	l2, err := lFunction(sk.Gd, sk.P)
	if err != nil {
		return nil, err
	}

	l2Inv := new(big.Int).ModInverse(l2, sk.P)
	if l2Inv == nil {
		return nil, errors.Wrap(ErrDecryptionFailure, "L(g_d) has no inverse mod p")
	}

	m := new(big.Int).Mod(new(big.Int).Mul(l1, l2Inv), sk.P)
	return m, nil
}
