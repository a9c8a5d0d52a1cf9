package okamotouchiyama

import (
	"crypto/rand"
	"testing"
	"time"
)

func TestGeneratePrime(t *testing.T) {
	concurrencyLevel := 4

	var tests = map[string]struct {
		bitLen      int
		timeout     time.Duration
		expectError bool
	}{
		"prime successfully generated": {
			bitLen:      256,
			timeout:     30 * time.Second,
			expectError: false,
		},
		"generator timed out": {
			bitLen:      8192,
			timeout:     1 * time.Millisecond,
			expectError: true,
		},
		"bit length is 1": {
			bitLen:      1,
			timeout:     time.Second,
			expectError: true,
		},
		"bit length is 2": {
			bitLen:      2,
			timeout:     10 * time.Second,
			expectError: false,
		},
	}

	for testName, test := range tests {
		t.Run(testName, func(t *testing.T) {
			p, err := generatePrime(test.bitLen, concurrencyLevel, test.timeout, rand.Reader)

			if test.expectError {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatal(err)
			}
			if p.BitLen() != test.bitLen {
				t.Errorf("generatePrime(%d) produced a value of bit length %d", test.bitLen, p.BitLen())
			}
			if !p.ProbablyPrime(millerRabinRounds) {
				t.Errorf("generatePrime(%d) = %v is not prime", test.bitLen, p)
			}
		})
	}
}

func TestGenerateDistinctPrimes(t *testing.T) {
	p, q, err := generateDistinctPrimes(64, 96, rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	if p.BitLen() != 64 {
		t.Errorf("p has bit length %d, want 64", p.BitLen())
	}
	if q.BitLen() != 96 {
		t.Errorf("q has bit length %d, want 96", q.BitLen())
	}
	if p.Cmp(q) == 0 {
		t.Error("p and q must be distinct")
	}
	if !p.ProbablyPrime(millerRabinRounds) || !q.ProbablyPrime(millerRabinRounds) {
		t.Error("generateDistinctPrimes produced a non-prime value")
	}
}

func TestGenerateDistinctPrimesDefaultsToCryptoRand(t *testing.T) {
	p, q, err := generateDistinctPrimes(48, 48, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Cmp(q) == 0 {
		t.Error("p and q must be distinct even when drawn from the same bit length")
	}
}
