package okamotouchiyama

import (
	"bytes"
	"math/big"
	"testing"
)

func TestEncodeIntegerMinimalForm(t *testing.T) {
	tests := []struct {
		name string
		n    *big.Int
		want []byte
	}{
		{"n", big.NewInt(9432233159), []byte{0x02, 0x05, 0x02, 0x32, 0x34, 0x74, 0xc7}},
		{"g", big.NewInt(8083706871), []byte{0x02, 0x05, 0x01, 0xe1, 0xd3, 0x93, 0xf7}},
		{"h", big.NewInt(7988052977), []byte{0x02, 0x05, 0x01, 0xdc, 0x20, 0x03, 0xf1}},
		{"zero", big.NewInt(0), []byte{0x02, 0x01, 0x00}},
		{"high bit set needs padding", big.NewInt(0x80), []byte{0x02, 0x02, 0x00, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeInteger(tt.n)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("encodeInteger(%v) = % x, want % x", tt.n, got, tt.want)
			}
		})
	}
}

func TestEncodeLengthShortAndLongForm(t *testing.T) {
	if got := encodeLength(5); !bytes.Equal(got, []byte{0x05}) {
		t.Errorf("encodeLength(5) = % x", got)
	}
	if got := encodeLength(127); !bytes.Equal(got, []byte{0x7f}) {
		t.Errorf("encodeLength(127) = % x", got)
	}
	if got := encodeLength(128); !bytes.Equal(got, []byte{0x81, 0x80}) {
		t.Errorf("encodeLength(128) = % x", got)
	}
	if got := encodeLength(300); !bytes.Equal(got, []byte{0x82, 0x01, 0x2c}) {
		t.Errorf("encodeLength(300) = % x", got)
	}
}

func TestPublicKeyGoldenDerBytes(t *testing.T) {
	pk := NewPublicKey(
		big.NewInt(9432233159),
		big.NewInt(8083706871),
		big.NewInt(7988052977),
	)
	der := encodeSequence(encodeInteger(pk.N), encodeInteger(pk.G), encodeInteger(pk.H))

	want := []byte{
		0x30, 0x15,
		0x02, 0x05, 0x02, 0x32, 0x34, 0x74, 0xc7,
		0x02, 0x05, 0x01, 0xe1, 0xd3, 0x93, 0xf7,
		0x02, 0x05, 0x01, 0xdc, 0x20, 0x03, 0xf1,
	}
	if !bytes.Equal(der, want) {
		t.Errorf("public key DER = % x, want % x", der, want)
	}
}

func TestPrivateKeyGoldenDerBytes(t *testing.T) {
	sk := NewPrivateKey(
		NewPublicKey(
			big.NewInt(9432233159),
			big.NewInt(8083706871),
			big.NewInt(7988052977),
		),
		big.NewInt(2003),
		big.NewInt(2351),
	)

	der := encodeSequence(
		encodeInteger(sk.N),
		encodeInteger(sk.G),
		encodeInteger(sk.H),
		encodeInteger(sk.Gd),
		encodeInteger(sk.P),
		encodeInteger(sk.Q),
		encodeInteger(sk.PSquare),
	)

	want := []byte{
		0x30, 0x27,
		0x02, 0x05, 0x02, 0x32, 0x34, 0x74, 0xc7,
		0x02, 0x05, 0x01, 0xe1, 0xd3, 0x93, 0xf7,
		0x02, 0x05, 0x01, 0xdc, 0x20, 0x03, 0xf1,
		0x02, 0x03, 0x1f, 0x63, 0x7a,
		0x02, 0x02, 0x07, 0xd3,
		0x02, 0x02, 0x09, 0x2f,
		0x02, 0x03, 0x3d, 0x37, 0xe9,
	}
	if !bytes.Equal(der, want) {
		t.Errorf("private key DER = % x, want % x", der, want)
	}
}

func TestDerRoundTripIntegers(t *testing.T) {
	values := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(255),
		big.NewInt(256),
		new(big.Int).Lsh(big.NewInt(1), 2048),
	}

	var fields [][]byte
	for _, v := range values {
		fields = append(fields, encodeInteger(v))
	}
	der := encodeSequence(fields...)

	body, err := readSequenceBody(der)
	if err != nil {
		t.Fatal(err)
	}
	got, err := readIntegers(body, len(values))
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range values {
		if got[i].Cmp(v) != 0 {
			t.Errorf("field %d = %v, want %v", i, got[i], v)
		}
	}
}

func TestReadIntegerAcceptsLongFormLength(t *testing.T) {
	// Manually build a long-form-length INTEGER carrying the value 5, to
	// verify the BER-lenient decode path spec.md §4.5 requires.
	der := []byte{0x02, 0x81, 0x01, 0x05}
	r := &derReader{buf: der}
	v, err := r.readInteger()
	if err != nil {
		t.Fatal(err)
	}
	if v.Cmp(big.NewInt(5)) != 0 {
		t.Errorf("got %v, want 5", v)
	}
}

func TestReadIntegerRejectsWrongTag(t *testing.T) {
	der := []byte{0x03, 0x01, 0x05}
	r := &derReader{buf: der}
	if _, err := r.readInteger(); err == nil {
		t.Fatal("expected error for wrong tag")
	}
}

func TestReadSequenceBodyRejectsTruncatedInput(t *testing.T) {
	der := []byte{0x30, 0x10, 0x02, 0x01, 0x05}
	if _, err := readSequenceBody(der); err == nil {
		t.Fatal("expected error for truncated sequence")
	}
}
