package okamotouchiyama_test

import (
	"fmt"
	"math/big"

	ou "github.com/Rog3rSm1th/okamoto-uchiyama-go"
)

// This example builds a key pair directly from known prime factors, the
// way a caller migrating fixed test parameters into this package would.
func Example_keyGeneration() {
	publicKey := ou.NewPublicKey(
		big.NewInt(9432233159),
		big.NewInt(8083706871),
		big.NewInt(7988052977),
	)

	privateKey := ou.NewPrivateKey(
		publicKey,
		big.NewInt(2003),
		big.NewInt(2351),
	)

	fmt.Println(publicKey)
	fmt.Println(privateKey.Gd)
	// Output:
	// PublicKey{N: 9432233159, G: 8083706871, H: 7988052977}
	// 2057082
}

// This example parses a PEM-encoded public key produced elsewhere.
func Example_parsePublicKeyPem() {
	const pemEncodedKey = `-----BEGIN PUBLIC KEY-----
MBUCBQIyNHTHAgUB4dOT9wIFAdwgA/E=
-----END PUBLIC KEY-----
`

	publicKey, err := ou.PublicKeyFromPem(pemEncodedKey)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(publicKey)
	// Output:
	// PublicKey{N: 9432233159, G: 8083706871, H: 7988052977}
}

// This example shows the additive homomorphism: decrypting the product of
// two ciphertexts yields the sum of the original plaintexts.
func Example_homomorphicAddition() {
	publicKey := ou.NewPublicKey(
		big.NewInt(9432233159),
		big.NewInt(8083706871),
		big.NewInt(7988052977),
	)
	privateKey := ou.NewPrivateKey(publicKey, big.NewInt(2003), big.NewInt(2351))

	c1, err := privateKey.PublicKey.EncryptWithR(big.NewInt(6), big.NewInt(12345))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	c2, err := privateKey.PublicKey.EncryptWithR(big.NewInt(7), big.NewInt(54321))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sum, err := privateKey.PublicKey.HomomorphicAdd(c1, c2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	plaintext, err := privateKey.Decrypt(sum)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(plaintext)
	// Output:
	// 13
}
