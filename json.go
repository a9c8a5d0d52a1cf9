package okamotouchiyama

// JSON marshalling for PublicKey, PrivateKey, and Ciphertext, following
// didiercrunch-paillier's encoding.go approach for PartialDecryptionZKP:
// shadow structs carrying each big.Int field as a hex string, so the wire
// representation stays human-inspectable and doesn't depend on JSON's
// handling of arbitrary-precision numbers.

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

type jsonPublicKey struct {
	N string `json:"n"`
	G string `json:"g"`
	H string `json:"h"`
}

type jsonPrivateKey struct {
	N  string `json:"n"`
	G  string `json:"g"`
	H  string `json:"h"`
	Gd string `json:"g_d"`
	P  string `json:"p"`
	Q  string `json:"q"`
	P2 string `json:"p_squared"`
}

type jsonCiphertext struct {
	C string `json:"c"`
}

func hexOf(n *big.Int) string {
	return fmt.Sprintf("%x", n)
}

func bigFromHex(field, hex string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, errors.Wrapf(ErrPemDecoding, "field %q is not hexadecimal", field)
	}
	return n, nil
}

// MarshalJSON renders the public key as {"n":..,"g":..,"h":..} with each
// value hex-encoded.
func (pk *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPublicKey{N: hexOf(pk.N), G: hexOf(pk.G), H: hexOf(pk.H)})
}

// UnmarshalJSON parses the representation produced by MarshalJSON.
func (pk *PublicKey) UnmarshalJSON(data []byte) error {
	var raw jsonPublicKey
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(ErrPemDecoding, err.Error())
	}
	var err error
	if pk.N, err = bigFromHex("n", raw.N); err != nil {
		return err
	}
	if pk.G, err = bigFromHex("g", raw.G); err != nil {
		return err
	}
	if pk.H, err = bigFromHex("h", raw.H); err != nil {
		return err
	}
	return nil
}

// MarshalJSON renders the private key including its embedded public key
// fields, each value hex-encoded.
func (sk *PrivateKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPrivateKey{
		N:  hexOf(sk.N),
		G:  hexOf(sk.G),
		H:  hexOf(sk.H),
		Gd: hexOf(sk.Gd),
		P:  hexOf(sk.P),
		Q:  hexOf(sk.Q),
		P2: hexOf(sk.PSquare),
	})
}

// UnmarshalJSON parses the representation produced by MarshalJSON.
func (sk *PrivateKey) UnmarshalJSON(data []byte) error {
	var raw jsonPrivateKey
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(ErrPemDecoding, err.Error())
	}
	var err error
	if sk.N, err = bigFromHex("n", raw.N); err != nil {
		return err
	}
	if sk.G, err = bigFromHex("g", raw.G); err != nil {
		return err
	}
	if sk.H, err = bigFromHex("h", raw.H); err != nil {
		return err
	}
	if sk.Gd, err = bigFromHex("g_d", raw.Gd); err != nil {
		return err
	}
	if sk.P, err = bigFromHex("p", raw.P); err != nil {
		return err
	}
	if sk.Q, err = bigFromHex("q", raw.Q); err != nil {
		return err
	}
	if sk.PSquare, err = bigFromHex("p_squared", raw.P2); err != nil {
		return err
	}
	return nil
}

// MarshalJSON renders the ciphertext as {"c":".."} with the value
// hex-encoded.
func (c *Ciphertext) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonCiphertext{C: hexOf(c.C)})
}

// UnmarshalJSON parses the representation produced by MarshalJSON.
func (c *Ciphertext) UnmarshalJSON(data []byte) error {
	var raw jsonCiphertext
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(ErrPemDecoding, err.Error())
	}
	v, err := bigFromHex("c", raw.C)
	if err != nil {
		return err
	}
	c.C = v
	return nil
}
