// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package blstest

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebohe/lighthouse/crypto/bls"
)

var sizes = []int{
	2,
	4,
	8,
	16,
	32,
	64,
	128,
}

// RunBenchmarks executes the backend benchmarks.
func (s Suite) RunBenchmarks(b *testing.B) {
	b.Run("AddAssign", s.benchmarkAddAssign)
	b.Run("FastAggregateVerify", s.benchmarkFastAggregateVerify)
	b.Run("Serialize", s.benchmarkSerialize)
	b.Run("Deserialize", s.benchmarkDeserialize)
}

func (s Suite) benchmarkAddAssign(b *testing.B) {
	require := require.New(b)

	msg := s.digest()
	_, sigs := s.signers(require, 1, msg)

	agg := bls.ZeroAggregateSignature(s.Backend)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		agg.AddAssign(sigs[0])
	}
}

func (s Suite) benchmarkFastAggregateVerify(b *testing.B) {
	msg := s.digest()
	pks, sigs := s.signers(require.New(b), sizes[len(sizes)-1], msg)

	for _, size := range sizes {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			sized := s.aggregate(sigs[:size]...)

			b.ResetTimer()

			for n := 0; n < b.N; n++ {
				require.True(b, sized.FastAggregateVerify(msg, pks[:size]))
			}
		})
	}
}

func (s Suite) benchmarkSerialize(b *testing.B) {
	msg := s.digest()
	_, sigs := s.signers(require.New(b), 2, msg)
	agg := s.aggregate(sigs...)

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_ = agg.Bytes()
	}
}

func (s Suite) benchmarkDeserialize(b *testing.B) {
	require := require.New(b)

	msg := s.digest()
	_, sigs := s.signers(require, 2, msg)
	agg := s.aggregate(sigs...)
	aggBytes := agg.Bytes()

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_, err := bls.AggregateSignatureFromBytes(s.Backend, aggBytes[:])
		require.NoError(err)
	}
}
