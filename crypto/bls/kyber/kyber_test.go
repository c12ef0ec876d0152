// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebohe/lighthouse/crypto/bls"
	"github.com/sebohe/lighthouse/crypto/bls/blstest"
)

func suiteUnderTest() blstest.Suite {
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
					return Sign(sk, msg)
				},
			}, nil
		},
	}
}

func TestBackend(t *testing.T) {
	suiteUnderTest().Run(t)
}

func BenchmarkBackend(b *testing.B) {
	suiteUnderTest().RunBenchmarks(b)
}

func TestZeroPointSerializesToInfinity(t *testing.T) {
	require := require.New(t)

	var expected [bls.SignatureLen]byte
	expected[0] = 0xc0

	zero := bls.ZeroAggregateSignature(New())
	require.Equal(expected, zero.Bytes())
}
