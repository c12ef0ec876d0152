// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicKeyFromBytesErrors(t *testing.T) {
	require := require.New(t)
	backend := newMemBackend()

	_, err := PublicKeyFromBytes(backend, make([]byte, PublicKeyLen-1))
	require.ErrorIs(err, errInvalidPublicKeyLen)

	_, err = PublicKeyFromBytes(backend, make([]byte, PublicKeyLen))
	require.ErrorIs(err, errMemInvalidPoint)

	_, err = PublicKeyFromBytes(nil, make([]byte, PublicKeyLen))
	require.ErrorIs(err, errNoBackend)
}

func TestPublicKeyRoundTrip(t *testing.T) {
	require := require.New(t)
	backend := newMemBackend()

	pk := memPublicKey(0xaa, 0xbb)
	pkBytes := pk.Bytes()

	parsed, err := PublicKeyFromBytes(backend, pkBytes[:])
	require.NoError(err)
	require.True(pk.Equal(parsed))

	pkJSON, err := json.Marshal(pk)
	require.NoError(err)

	fromJSON := NewPublicKey(backend, nil)
	require.NoError(json.Unmarshal(pkJSON, fromJSON))
	require.True(pk.Equal(fromJSON))
}

func TestAggregatePublicKeysWrapper(t *testing.T) {
	require := require.New(t)
	backend := newMemBackend()

	pk1 := memPublicKey(0x01)
	pk2 := memPublicKey(0x02)

	agg, err := AggregatePublicKeys(backend, []*PublicKey{pk1, pk2})
	require.NoError(err)

	// The mem backend folds keys by xor.
	expected := memPublicKey(0x03).Bytes()
	require.Equal(expected, agg.Bytes())

	_, err = AggregatePublicKeys(backend, []*PublicKey{pk1, nil})
	require.ErrorIs(err, errNoPublicKeyPoint)

	_, err = AggregatePublicKeys(nil, []*PublicKey{pk1})
	require.ErrorIs(err, errNoBackend)
}
