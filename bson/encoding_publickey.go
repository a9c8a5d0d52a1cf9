package bson

import (
	"fmt"

	ou "github.com/Rog3rSm1th/okamoto-uchiyama-go"
	"gopkg.in/mgo.v2/bson"
)

type PublicKey ou.PublicKey

// SerializePublicKey serializes a PublicKey to BSON.
func SerializePublicKey(publicKey *ou.PublicKey) ([]byte, error) {
	return bson.Marshal(toSerializablePublicKey(publicKey))
}

// DeserializePublicKey deserializes BSON to a PublicKey.
func DeserializePublicKey(data []byte) (*ou.PublicKey, error) {
	serializable := new(PublicKey)
	if err := bson.Unmarshal(data, serializable); err != nil {
		return nil, err
	}
	return toOriginalPublicKey(serializable), nil
}

func toSerializablePublicKey(publicKey *ou.PublicKey) *PublicKey {
	serializable := PublicKey(*publicKey)
	return &serializable
}

func toOriginalPublicKey(serializable *PublicKey) *ou.PublicKey {
	original := ou.PublicKey(*serializable)
	return &original
}

type dbPublicKey struct {
	N string `bson:",omitempty"`
	G string `bson:",omitempty"`
	H string `bson:",omitempty"`
}

func (publicKey *PublicKey) GetBSON() (interface{}, error) {
	m := make(map[string]string)
	m["n"] = fmt.Sprintf("%x", publicKey.N)
	m["g"] = fmt.Sprintf("%x", publicKey.G)
	m["h"] = fmt.Sprintf("%x", publicKey.H)
	return m, nil
}

func (publicKey *PublicKey) SetBSON(raw bson.Raw) error {
	var err error
	db := new(dbPublicKey)
	if err = raw.Unmarshal(db); err != nil {
		return err
	}

	if publicKey.N, err = fromHex(db.N); err != nil {
		return err
	}
	if publicKey.G, err = fromHex(db.G); err != nil {
		return err
	}
	if publicKey.H, err = fromHex(db.H); err != nil {
		return err
	}
	return nil
}
