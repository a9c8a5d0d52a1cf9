/*
Package okamotouchiyama implements the Okamoto-Uchiyama cryptosystem, a
probabilistic, additively homomorphic public-key scheme whose security
rests on the difficulty of factoring an integer n = p^2*q.

Given a public key (n, g, h) and a private key (p, q, p^2, g_d), the package
supports:

  - Probabilistic encryption of a plaintext m in [0, p) under the public key.
  - Deterministic decryption via the discrete-log helper (the "L" function)
    over Z/pZ.
  - An additive homomorphism on ciphertexts: decrypting the product of two
    ciphertexts (mod n) yields the sum of their plaintexts (mod p).
  - A bespoke DER-like encoding of keys and ciphertexts, framed as PEM.

The cryptographic core is synchronous and holds no mutable shared state; keys
and ciphertexts are immutable once constructed and may be shared freely
across goroutines. Key generation draws on the process-wide crypto/rand
reader, which is itself safe for concurrent use.

This package does not provide CCA security, constant-time guarantees against
physical side channels, or padding for plaintexts outside [0, p). It does not
aim for wire compatibility with any other Okamoto-Uchiyama implementation;
the DER grammar in pem.go and der.go is specific to this package.
*/
package okamotouchiyama
