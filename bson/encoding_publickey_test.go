package bson

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	ou "github.com/Rog3rSm1th/okamoto-uchiyama-go"
)

func TestPublicKeyBsonSerialization(t *testing.T) {
	key := &ou.PublicKey{
		N: big.NewInt(9432233159),
		G: big.NewInt(8083706871),
		H: big.NewInt(7988052977),
	}

	serialized, err := SerializePublicKey(key)
	require.NoError(t, err)

	deserialized, err := DeserializePublicKey(serialized)
	require.NoError(t, err)

	require.Equal(t, key, deserialized)
}
