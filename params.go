package okamotouchiyama

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// generatorSearchAttempts bounds the loop that looks for a generator g with
// g^(p-1) mod p^2 != 1. Acceptance probability is >= 1 - 1/p, so this bound
// is a defensive ceiling, not a realistic limit (spec requires a bounded
// search so a broken RNG can't spin forever).
const generatorSearchAttempts = 128

// Params holds the transient material produced by key generation: the two
// primes, the derived modulus and generator, and the nominal key size. It is
// consumed by PublicKey/PrivateKey and is not meant to be retained afterward.
type Params struct {
	P       *big.Int
	Q       *big.Int
	PSquare *big.Int
	N       *big.Int
	G       *big.Int
	Gd      *big.Int
	H       *big.Int
	Size    KeySize
}

// GenerateParams runs the Okamoto-Uchiyama key-generation algorithm for the
// given nominal key size: draws p at size/3 bits and q at size/2 bits
// (a library-fixed split, not a security recommendation, kept so PEM output
// matches the reference golden vectors), derives n = p^2*q, and searches
// for a usable generator g.
//
// random is normally crypto/rand.Reader; tests may substitute a
// deterministic reader.
func GenerateParams(size KeySize, random io.Reader) (*Params, error) {
	if random == nil {
		random = rand.Reader
	}

	p, q, err := generateDistinctPrimes(size.pBits(), size.qBits(), random)
	if err != nil {
		return nil, err
	}
	return paramsFromPrimes(p, q, size, random)
}

// paramsFromPrimes builds Params from already-chosen primes, running only
// the generator search. It underlies GenerateParams and is also useful for
// tests that need reproducible, small primes.
func paramsFromPrimes(p, q *big.Int, size KeySize, random io.Reader) (*Params, error) {
	if random == nil {
		random = rand.Reader
	}

	pSquare := new(big.Int).Mul(p, p)
	n := new(big.Int).Mul(pSquare, q)

	g, gd, err := findGenerator(p, pSquare, n, random)
	if err != nil {
		return nil, err
	}

	h := new(big.Int).Exp(g, n, n)

	return &Params{
		P:       p,
		Q:       q,
		PSquare: pSquare,
		N:       n,
		G:       g,
		Gd:      gd,
		H:       h,
		Size:    size,
	}, nil
}

// findGenerator samples g uniformly from [2, n-2] until g^(p-1) mod p^2 is
// not 1, which guarantees g's order in (Z/p^2Z)* is divisible by p — the
// correctness precondition decryption relies on.
func findGenerator(p, pSquare, n *big.Int, random io.Reader) (g, gd *big.Int, err error) {
	pMinusOne := new(big.Int).Sub(p, one)
	upperBound := new(big.Int).Sub(n, TWO) // n-2, since sampling range is inclusive

	for attempt := 0; attempt < generatorSearchAttempts; attempt++ {
		candidate, sampleErr := getRandomInRange(random, TWO, upperBound)
		if sampleErr != nil {
			return nil, nil, sampleErr
		}

		candidateGd := new(big.Int).Exp(candidate, pMinusOne, pSquare)
		if candidateGd.Cmp(one) != 0 {
			return candidate, candidateGd, nil
		}
	}

	return nil, nil, errors.Wrapf(ErrGeneratorNotFound, "no generator found in %d attempts", generatorSearchAttempts)
}

// PublicKey extracts the public half of these parameters.
func (p *Params) PublicKey() *PublicKey {
	return &PublicKey{
		N: new(big.Int).Set(p.N),
		G: new(big.Int).Set(p.G),
		H: new(big.Int).Set(p.H),
	}
}

// PrivateKey extracts the private half of these parameters, embedding a
// clone of the public key.
func (p *Params) PrivateKey() *PrivateKey {
	return &PrivateKey{
		PublicKey: *p.PublicKey(),
		Gd:        new(big.Int).Set(p.Gd),
		P:         new(big.Int).Set(p.P),
		Q:         new(big.Int).Set(p.Q),
		PSquare:   new(big.Int).Set(p.PSquare),
	}
}
