package okamotouchiyama

// PEM envelope handling for PublicKey, PrivateKey, and Ciphertext. The
// envelope is a labelled base64 block around the bespoke DER payloads
// encoded in der.go:
//
//	Ciphertext: SEQUENCE { c }
//	PublicKey:  SEQUENCE { n, g, h }
//	PrivateKey: SEQUENCE { n, g, h, g_d, p, q, p^2 }
//
// Encoding always emits the base64 body on a single line with a trailing
// LF after the END line, per spec.md §6. Decoding tolerates embedded
// newlines and surrounding whitespace in the body.

import (
	"bytes"
	"encoding/base64"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

const (
	labelPublicKey  = "PUBLIC KEY"
	labelPrivateKey = "PRIVATE KEY"
	labelCiphertext = "CIPHERTEXT"
)

// toPem frames der as a PEM block under the given label, body on one line.
func toPem(label string, der []byte) string {
	var b strings.Builder
	b.WriteString("-----BEGIN ")
	b.WriteString(label)
	b.WriteString("-----\n")
	b.WriteString(base64.StdEncoding.EncodeToString(der))
	b.WriteString("\n-----END ")
	b.WriteString(label)
	b.WriteString("-----\n")
	return b.String()
}

// fromPem strips the BEGIN/END framing for the given label and base64-
// decodes the body, tolerating embedded newlines and surrounding
// whitespace.
func fromPem(label string, pemText string) ([]byte, error) {
	beginTag := "-----BEGIN " + label + "-----"
	endTag := "-----END " + label + "-----"

	beginIdx := strings.Index(pemText, beginTag)
	if beginIdx < 0 {
		return nil, errors.Wrapf(ErrPemDecoding, "missing %q header", beginTag)
	}
	bodyStart := beginIdx + len(beginTag)

	endIdx := strings.Index(pemText[bodyStart:], endTag)
	if endIdx < 0 {
		return nil, errors.Wrapf(ErrPemDecoding, "missing %q trailer", endTag)
	}
	body := pemText[bodyStart : bodyStart+endIdx]

	var clean bytes.Buffer
	for _, r := range body {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		clean.WriteRune(r)
	}

	der, err := base64.StdEncoding.DecodeString(clean.String())
	if err != nil {
		return nil, errors.Wrap(ErrPemDecoding, err.Error())
	}
	return der, nil
}

// ToPem encodes the public key as a labelled PEM block: SEQUENCE { n, g, h }.
func (pk *PublicKey) ToPem() string {
	der := encodeSequence(
		encodeInteger(pk.N),
		encodeInteger(pk.G),
		encodeInteger(pk.H),
	)
	return toPem(labelPublicKey, der)
}

// PublicKeyFromPem decodes a PEM-encoded public key produced by ToPem.
func PublicKeyFromPem(pemText string) (*PublicKey, error) {
	der, err := fromPem(labelPublicKey, pemText)
	if err != nil {
		return nil, err
	}
	body, err := readSequenceBody(der)
	if err != nil {
		return nil, err
	}

	values, err := readIntegers(body, 3)
	if err != nil {
		return nil, err
	}
	return &PublicKey{N: values[0], G: values[1], H: values[2]}, nil
}

// ToPem encodes the private key as a labelled PEM block:
// SEQUENCE { n, g, h, g_d, p, q, p^2 }.
func (sk *PrivateKey) ToPem() string {
	der := encodeSequence(
		encodeInteger(sk.N),
		encodeInteger(sk.G),
		encodeInteger(sk.H),
		encodeInteger(sk.Gd),
		encodeInteger(sk.P),
		encodeInteger(sk.Q),
		encodeInteger(sk.PSquare),
	)
	return toPem(labelPrivateKey, der)
}

// PrivateKeyFromPem decodes a PEM-encoded private key produced by ToPem.
func PrivateKeyFromPem(pemText string) (*PrivateKey, error) {
	der, err := fromPem(labelPrivateKey, pemText)
	if err != nil {
		return nil, err
	}
	body, err := readSequenceBody(der)
	if err != nil {
		return nil, err
	}

	values, err := readIntegers(body, 7)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{
		PublicKey: PublicKey{N: values[0], G: values[1], H: values[2]},
		Gd:        values[3],
		P:         values[4],
		Q:         values[5],
		PSquare:   values[6],
	}, nil
}

// ToPem encodes the ciphertext as a labelled PEM block: SEQUENCE { c }.
func (c *Ciphertext) ToPem() string {
	der := encodeSequence(encodeInteger(c.C))
	return toPem(labelCiphertext, der)
}

// CiphertextFromPem decodes a PEM-encoded ciphertext produced by ToPem.
func CiphertextFromPem(pemText string) (*Ciphertext, error) {
	der, err := fromPem(labelCiphertext, pemText)
	if err != nil {
		return nil, err
	}
	body, err := readSequenceBody(der)
	if err != nil {
		return nil, err
	}

	values, err := readIntegers(body, 1)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{C: values[0]}, nil
}

// readIntegers reads exactly count INTEGERs from r, failing with
// ErrPemDecoding if the sequence holds fewer (an expected field is absent)
// or more than expected.
func readIntegers(r *derReader, count int) ([]*big.Int, error) {
	values := make([]*big.Int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.readInteger()
		if err != nil {
			return nil, errors.Wrapf(ErrPemDecoding, "reading field %d of %d: %s", i, count, err)
		}
		values = append(values, v)
	}
	if r.pos != len(r.buf) {
		return nil, errors.Wrap(ErrPemDecoding, "trailing bytes after expected DER fields")
	}
	return values, nil
}
