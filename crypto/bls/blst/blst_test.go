// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package blst

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebohe/lighthouse/crypto/bls"
	"github.com/sebohe/lighthouse/crypto/bls/blstest"
	"github.com/sebohe/lighthouse/crypto/bls/kyber"
)

func suite() blstest.Suite {
	return blstest.Suite{
		Backend: New(),
		NewKeyPair: func() (*blstest.KeyPair, error) {
			sk, err := NewSecretKey()
			if err != nil {
				return nil, err
			}
			return &blstest.KeyPair{
				PublicKey: PublicFromSecretKey(sk),
				Sign: func(msg []byte) (*bls.Signature, error) {
					return Sign(sk, msg), nil
				},
			}, nil
		},
	}
}

func TestBackend(t *testing.T) {
	suite().Run(t)
}

func BenchmarkBackend(b *testing.B) {
	suite().RunBenchmarks(b)
}

func TestSecretKeyRoundTrip(t *testing.T) {
	require := require.New(t)

	sk, err := NewSecretKey()
	require.NoError(err)

	skBytes := SecretKeyToBytes(sk)
	require.Len(skBytes, SecretKeyLen)

	parsed, err := SecretKeyFromBytes(skBytes)
	require.NoError(err)
	require.Equal(skBytes, SecretKeyToBytes(parsed))
	require.Equal(PublicFromSecretKey(sk).Bytes(), PublicFromSecretKey(parsed).Bytes())
}

func TestZeroPointSerializesToInfinity(t *testing.T) {
	require := require.New(t)

	zero := bls.ZeroAggregateSignature(New())
	require.Equal(infinitySignature, zero.Bytes())
}

// Backends share the canonical 96 byte encoding, so points produced by one
// decode under the other.
func TestCrossBackendDecode(t *testing.T) {
	require := require.New(t)

	sk, err := kyber.NewSecretKey()
	require.NoError(err)
	sig, err := kyber.Sign(sk, []byte("wire"))
	require.NoError(err)

	agg := bls.EmptyAggregateSignature(kyber.New())
	agg.AddAssign(sig)
	aggBytes := agg.Bytes()

	parsed, err := bls.AggregateSignatureFromBytes(New(), aggBytes[:])
	require.NoError(err)
	require.Equal(aggBytes, parsed.Bytes())

	zeroBytes := bls.ZeroAggregateSignature(New()).Bytes()
	parsedZero, err := bls.AggregateSignatureFromBytes(kyber.New(), zeroBytes[:])
	require.NoError(err)
	require.Equal(zeroBytes, parsedZero.Bytes())
}
