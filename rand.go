package okamotouchiyama

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

var zero = big.NewInt(0)
var one = big.NewInt(1)
var TWO = big.NewInt(2)

// getRandomInRange draws a uniform random value in [lo, hi], inclusive on
// both ends. It is used for the generator search (g in [2, n-2]) and for
// the per-encryption randomness r in [1, n-2].
//
// Modelled on didiercrunch-paillier's GetRandomNumberInMultiplicativeGroup
// (utils.go), generalized from "nonzero and coprime to n" to a plain
// bounded range, since Okamoto-Uchiyama's g and r have no coprimality
// requirement of their own.
func getRandomInRange(random io.Reader, lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) < 0 {
		return nil, errors.New("okamotouchiyama: empty sampling range")
	}
	span := new(big.Int).Add(new(big.Int).Sub(hi, lo), one)
	r, err := rand.Int(random, span)
	if err != nil {
		return nil, errors.Wrap(ErrInsufficientEntropy, err.Error())
	}
	return r.Add(r, lo), nil
}

// getRandomPositiveInt draws a uniform random value in [0, bound). A failure
// of the underlying reader is returned wrapped as ErrInsufficientEntropy, not
// retried. Named to match the
// GetRandomPositiveInt convention used throughout bnb-chain-tss-lib's
// common/random.go.
func getRandomPositiveInt(random io.Reader, bound *big.Int) (*big.Int, error) {
	r, err := rand.Int(random, bound)
	if err != nil {
		return nil, errors.Wrap(ErrInsufficientEntropy, err.Error())
	}
	return r, nil
}
