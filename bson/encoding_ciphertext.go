// Package bson provides serialization and deserialization between
// okamotouchiyama objects and BSON, for callers embedding key or ciphertext
// material in a Mongo-backed document store.
package bson

import (
	"errors"
	"fmt"
	"math/big"

	ou "github.com/Rog3rSm1th/okamoto-uchiyama-go"
	"gopkg.in/mgo.v2/bson"
)

type Ciphertext ou.Ciphertext

// SerializeCiphertext serializes a Ciphertext to BSON.
func SerializeCiphertext(c *ou.Ciphertext) ([]byte, error) {
	return bson.Marshal(toSerializableCiphertext(c))
}

// DeserializeCiphertext deserializes BSON to a Ciphertext.
func DeserializeCiphertext(data []byte) (*ou.Ciphertext, error) {
	serializable := new(Ciphertext)
	if err := bson.Unmarshal(data, serializable); err != nil {
		return nil, err
	}
	return toOriginalCiphertext(serializable), nil
}

func toSerializableCiphertext(c *ou.Ciphertext) *Ciphertext {
	serializable := Ciphertext(*c)
	return &serializable
}

func toOriginalCiphertext(serializable *Ciphertext) *ou.Ciphertext {
	original := ou.Ciphertext(*serializable)
	return &original
}

type dbCiphertext struct {
	C string
}

func (c *Ciphertext) GetBSON() (interface{}, error) {
	return &dbCiphertext{fmt.Sprintf("%x", c.C)}, nil
}

func (c *Ciphertext) SetBSON(raw bson.Raw) error {
	db := dbCiphertext{}
	if err := raw.Unmarshal(&db); err != nil {
		return err
	}
	var ok bool
	c.C, ok = new(big.Int).SetString(db.C, 16)
	if !ok {
		return errors.New("big int not in hexadecimal format")
	}
	return nil
}
