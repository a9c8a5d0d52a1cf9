package bson

import (
	"fmt"

	ou "github.com/Rog3rSm1th/okamoto-uchiyama-go"
	"gopkg.in/mgo.v2/bson"
)

type PrivateKey ou.PrivateKey

// SerializePrivateKey serializes a PrivateKey to BSON.
func SerializePrivateKey(key *ou.PrivateKey) ([]byte, error) {
	return bson.Marshal(toSerializablePrivateKey(key))
}

// DeserializePrivateKey deserializes BSON to a PrivateKey.
func DeserializePrivateKey(data []byte) (*ou.PrivateKey, error) {
	serializable := new(PrivateKey)
	if err := bson.Unmarshal(data, serializable); err != nil {
		return nil, err
	}
	return toOriginalPrivateKey(serializable), nil
}

func toSerializablePrivateKey(key *ou.PrivateKey) *PrivateKey {
	serializable := PrivateKey(*key)
	return &serializable
}

func toOriginalPrivateKey(serializable *PrivateKey) *ou.PrivateKey {
	original := ou.PrivateKey(*serializable)
	return &original
}

func (privateKey *PrivateKey) GetBSON() (interface{}, error) {
	m := make(map[string]string)
	m["n"] = fmt.Sprintf("%x", privateKey.N)
	m["g"] = fmt.Sprintf("%x", privateKey.G)
	m["h"] = fmt.Sprintf("%x", privateKey.H)
	m["gd"] = fmt.Sprintf("%x", privateKey.Gd)
	m["p"] = fmt.Sprintf("%x", privateKey.P)
	m["q"] = fmt.Sprintf("%x", privateKey.Q)
	m["p2"] = fmt.Sprintf("%x", privateKey.PSquare)
	return m, nil
}

func (privateKey *PrivateKey) SetBSON(raw bson.Raw) error {
	type wireShape struct {
		N  string
		G  string
		H  string
		Gd string
		P  string
		Q  string
		P2 string
	}
	w := new(wireShape)
	if err := raw.Unmarshal(w); err != nil {
		return err
	}

	var err error
	if privateKey.N, err = fromHex(w.N); err != nil {
		return err
	}
	if privateKey.G, err = fromHex(w.G); err != nil {
		return err
	}
	if privateKey.H, err = fromHex(w.H); err != nil {
		return err
	}
	if privateKey.Gd, err = fromHex(w.Gd); err != nil {
		return err
	}
	if privateKey.P, err = fromHex(w.P); err != nil {
		return err
	}
	if privateKey.Q, err = fromHex(w.Q); err != nil {
		return err
	}
	if privateKey.PSquare, err = fromHex(w.P2); err != nil {
		return err
	}
	return nil
}
