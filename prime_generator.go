// The concurrency and small-primes-sieve structure here is adapted from
// didiercrunch-paillier's safe_prime_generator.go, which itself credits the
// original Go implementation of crypto/rand.Prime. Unlike that file, this
// generator does not search for safe (Sophie Germain) primes: Okamoto-Uchiyama
// places no such requirement on p or q, so the search below looks for a
// single plain probable prime of a requested bit length.

package okamotouchiyama

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// smallPrimes lets the search quickly reject candidates divisible by a small
// prime before paying for a Miller-Rabin round.
var smallPrimes = []uint8{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
}

var smallPrimesProduct = new(big.Int).SetUint64(16294579238595022365)

// millerRabinRounds is the witness count passed to ProbablyPrime. 40 rounds
// keeps the false-positive probability below 2^-80 for the key sizes this
// package supports (spec requires >= 40 for keys of 1024 bits or more).
const millerRabinRounds = 40

// generatePrime searches concurrently for a probable prime of exactly
// bitLen bits, using concurrencyLevel goroutines, and gives up after
// timeout elapses.
func generatePrime(
	bitLen int,
	concurrencyLevel int,
	timeout time.Duration,
	random io.Reader,
) (*big.Int, error) {
	if bitLen < 2 {
		return nil, errors.New("okamotouchiyama: prime size must be at least 2 bits")
	}

	primeChan := make(chan *big.Int, 1)
	errChan := make(chan error, 1)
	defer close(primeChan)
	defer close(errChan)

	mutex := &sync.Mutex{}
	waitGroup := &sync.WaitGroup{}
	waitGroup.Add(concurrencyLevel)

	ctx, cancel := context.WithCancel(context.Background())

	for i := 0; i < concurrencyLevel; i++ {
		runGeneratePrimeRoutine(ctx, primeChan, errChan, mutex, waitGroup, random, bitLen)
	}

	go func() {
		time.Sleep(timeout)
		mutex.Lock()
		cancel()
		mutex.Unlock()
	}()

	var p *big.Int
	var err error

	select {
	case result := <-primeChan:
		mutex.Lock()
		cancel()
		mutex.Unlock()
		p, err = result, nil
	case searchErr := <-errChan:
		mutex.Lock()
		cancel()
		mutex.Unlock()
		p, err = nil, errors.Wrap(ErrInsufficientEntropy, searchErr.Error())
	case <-ctx.Done():
		p, err = nil, errors.Wrapf(ErrInsufficientEntropy, "prime search timed out after %v", timeout)
	}

	waitGroup.Wait()
	return p, err
}

// runGeneratePrimeRoutine starts a goroutine that repeatedly draws
// bitLen-bit odd candidates (top two bits set, per the standard
// crypto/rand.Prime convention) until it finds one that passes the
// small-primes sieve and then Miller-Rabin.
func runGeneratePrimeRoutine(
	ctx context.Context,
	primeChan chan *big.Int,
	errChan chan error,
	mutex *sync.Mutex,
	waitGroup *sync.WaitGroup,
	random io.Reader,
	bitLen int,
) {
	b := uint(bitLen % 8)
	if b == 0 {
		b = 8
	}
	bytes := make([]byte, (bitLen+7)/8)
	candidate := new(big.Int)
	bigMod := new(big.Int)

	go func() {
		for {
			select {
			case <-ctx.Done():
				waitGroup.Done()
				return
			default:
				_, err := io.ReadFull(random, bytes)
				if err != nil {
					errChan <- err
					return
				}

				bytes[0] &= uint8(int(1<<b) - 1)
				if b >= 2 {
					bytes[0] |= 3 << (b - 2)
				} else {
					bytes[0] |= 1
					if len(bytes) > 1 {
						bytes[1] |= 0x80
					}
				}
				bytes[len(bytes)-1] |= 1

				candidate.SetBytes(bytes)

				bigMod.Mod(candidate, smallPrimesProduct)
				mod := bigMod.Uint64()

			NextDelta:
				for delta := uint64(0); delta < 1<<20; delta += 2 {
					m := mod + delta
					for _, prime := range smallPrimes {
						if m%uint64(prime) == 0 && (bitLen > 6 || m != uint64(prime)) {
							continue NextDelta
						}
					}

					if delta > 0 {
						bigMod.SetUint64(delta)
						candidate.Add(candidate, bigMod)
					}
					break
				}

				if candidate.BitLen() == bitLen && candidate.ProbablyPrime(millerRabinRounds) {
					mutex.Lock()
					if ctx.Err() == nil {
						select {
						case primeChan <- new(big.Int).Set(candidate):
						default:
						}
					}
					mutex.Unlock()
					waitGroup.Done()
					return
				}
			}
		}
	}()
}

// defaultPrimeGenTimeout bounds how long a single p/q draw may take before
// init surfaces ErrInsufficientEntropy instead of hanging forever on a
// starved RNG.
const defaultPrimeGenTimeout = 120 * time.Second

// defaultConcurrencyLevel matches didiercrunch-paillier's guidance: enough
// parallel search goroutines to make 2048-bit primes practical without
// over-subscribing small keys.
const defaultConcurrencyLevel = 4

// generateDistinctPrimes draws p (pBits bits) and q (qBits bits) such that
// p != q, using rand.Reader as the entropy source unless overridden.
func generateDistinctPrimes(pBits, qBits int, random io.Reader) (p, q *big.Int, err error) {
	if random == nil {
		random = rand.Reader
	}

	p, err = generatePrime(pBits, defaultConcurrencyLevel, defaultPrimeGenTimeout, random)
	if err != nil {
		return nil, nil, err
	}

	for {
		q, err = generatePrime(qBits, defaultConcurrencyLevel, defaultPrimeGenTimeout, random)
		if err != nil {
			return nil, nil, err
		}
		if q.Cmp(p) != 0 {
			return p, q, nil
		}
	}
}
