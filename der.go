package okamotouchiyama

// This file implements the bespoke DER-like grammar spec.md §4.5/§9
// describes: a SEQUENCE of INTEGERs, each a standard ASN.1 tag-0x02
// big-endian magnitude. It intentionally does not use encoding/asn1:
// encoding/asn1 has no notion of a bare, untyped INTEGER sequence and would
// fight the exact byte layout the golden vectors require.
//
// Decoding both golden vectors in spec.md §8 byte-for-byte shows minimal,
// standard-form DER lengths (tag 0x02, one length byte for values under
// 128 bytes, no leading zero padding beyond what sign disambiguation
// needs) — not the "always long-form, native word size" variant the
// original_source/ Rust implementation emits. This package therefore emits
// minimal DER and, on decode, tolerates both short- and long-form lengths
// (BER-lenient), per spec.md §4.5's explicit leniency allowance.

import (
	"math/big"

	"github.com/pkg/errors"
)

const integerTag = 0x02
const sequenceTag = 0x30

// encodeInteger renders n as a DER INTEGER: tag, length, minimal big-endian
// magnitude, with a leading 0x00 byte prepended only when the magnitude's
// high bit is set (so the value is never misread as negative).
func encodeInteger(n *big.Int) []byte {
	magnitude := n.Bytes()
	if len(magnitude) == 0 {
		magnitude = []byte{0x00}
	}
	if magnitude[0]&0x80 != 0 {
		padded := make([]byte, len(magnitude)+1)
		copy(padded[1:], magnitude)
		magnitude = padded
	}

	out := []byte{integerTag}
	out = append(out, encodeLength(len(magnitude))...)
	out = append(out, magnitude...)
	return out
}

// encodeLength renders n in minimal DER form: a single byte for n < 128,
// otherwise a long-form length (0x80|k followed by k big-endian bytes).
func encodeLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var be []byte
	for v := n; v > 0; v >>= 8 {
		be = append([]byte{byte(v)}, be...)
	}
	return append([]byte{0x80 | byte(len(be))}, be...)
}

// encodeSequence wraps the concatenation of already-encoded fields in a
// DER SEQUENCE header.
func encodeSequence(fields ...[]byte) []byte {
	var body []byte
	for _, f := range fields {
		body = append(body, f...)
	}
	out := []byte{sequenceTag}
	out = append(out, encodeLength(len(body))...)
	out = append(out, body...)
	return out
}

// derReader walks a DER byte slice left to right, tracking position.
type derReader struct {
	buf []byte
	pos int
}

func (r *derReader) readByte() (byte, error) {
	if r.pos >= len(r.buf) {
		return 0, errors.Wrap(ErrPemDecoding, "unexpected end of DER input")
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

// readLength parses a DER length field, accepting both short-form
// (single byte < 0x80) and long-form (0x80|k followed by k bytes) encoding.
func (r *derReader) readLength() (int, error) {
	first, err := r.readByte()
	if err != nil {
		return 0, err
	}
	if first&0x80 == 0 {
		return int(first), nil
	}

	numBytes := int(first &^ 0x80)
	if numBytes == 0 {
		return 0, errors.Wrap(ErrPemDecoding, "indefinite-form DER length is not supported")
	}
	if r.pos+numBytes > len(r.buf) {
		return 0, errors.Wrap(ErrPemDecoding, "truncated DER length")
	}
	length := 0
	for i := 0; i < numBytes; i++ {
		length = length<<8 | int(r.buf[r.pos+i])
	}
	r.pos += numBytes
	return length, nil
}

// readInteger parses one DER INTEGER (tag 0x02) and returns its magnitude
// as a non-negative big.Int. This package's values are always non-negative,
// so the sign-disambiguation leading 0x00 byte, if present, is simply
// dropped along with any other leading zero bytes.
func (r *derReader) readInteger() (*big.Int, error) {
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if tag != integerTag {
		return nil, errors.Wrapf(ErrPemDecoding, "expected INTEGER tag 0x02, got 0x%02x", tag)
	}
	length, err := r.readLength()
	if err != nil {
		return nil, err
	}
	if length < 0 || r.pos+length > len(r.buf) {
		return nil, errors.Wrap(ErrPemDecoding, "truncated DER INTEGER value")
	}
	value := r.buf[r.pos : r.pos+length]
	r.pos += length
	return new(big.Int).SetBytes(value), nil
}

// readSequenceBody parses a SEQUENCE header and returns a derReader scoped
// to exactly its body bytes.
func readSequenceBody(data []byte) (*derReader, error) {
	r := &derReader{buf: data}
	tag, err := r.readByte()
	if err != nil {
		return nil, err
	}
	if tag != sequenceTag {
		return nil, errors.Wrapf(ErrPemDecoding, "expected SEQUENCE tag 0x30, got 0x%02x", tag)
	}
	length, err := r.readLength()
	if err != nil {
		return nil, err
	}
	if length < 0 || r.pos+length > len(r.buf) {
		return nil, errors.Wrap(ErrPemDecoding, "truncated DER SEQUENCE")
	}
	return &derReader{buf: r.buf[r.pos : r.pos+length]}, nil
}
