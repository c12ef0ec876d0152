// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package blstest runs one behavioral test suite against every bls backend.
// Backend packages instantiate a Suite with their own key generation and
// signing hooks and call Run from their tests.
package blstest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sebohe/lighthouse/crypto/bls"
	"github.com/sebohe/lighthouse/utils"
	"github.com/sebohe/lighthouse/utils/hashing"
)

// KeyPair is a freshly generated key with a closure that signs with it.
type KeyPair struct {
	PublicKey *bls.PublicKey
	Sign      func(msg []byte) (*bls.Signature, error)
}

// Suite fixes the backend under test.
type Suite struct {
	Backend    bls.Backend
	NewKeyPair func() (*KeyPair, error)
}

// Run executes every backend-independent behavior test.
func (s Suite) Run(t *testing.T) {
	t.Run("sign and verify", s.testSignVerify)
	t.Run("fast aggregate verify", s.testFastAggregateVerify)
	t.Run("aggregate verify distinct messages", s.testAggregateVerify)
	t.Run("fold order independence", s.testFoldOrderIndependence)
	t.Run("zero vs empty", s.testZeroVsEmpty)
	t.Run("no-op absorption", s.testNoopAbsorption)
	t.Run("serialize round trip", s.testRoundTrip)
	t.Run("empty sentinel", s.testEmptySentinel)
	t.Run("verification false cases", s.testVerificationFalseCases)
	t.Run("decode rejection", s.testDecodeRejection)
	t.Run("hex round trip", s.testHexRoundTrip)
	t.Run("json round trip", s.testJSONRoundTrip)
	t.Run("tree hash", s.testTreeHash)
	t.Run("aggregate public keys", s.testAggregatePublicKeys)
	t.Run("copy isolation", s.testCopyIsolation)
}

func (s Suite) digest() bls.Hash256 {
	return hashing.ComputeHash256Array(utils.RandomBytes(1234))
}

// signers generates [n] key pairs all signing the same [msg].
func (s Suite) signers(require *require.Assertions, n int, msg bls.Hash256) ([]*bls.PublicKey, []*bls.Signature) {
	pks := make([]*bls.PublicKey, n)
	sigs := make([]*bls.Signature, n)
	for i := 0; i < n; i++ {
		kp, err := s.NewKeyPair()
		require.NoError(err)
		sig, err := kp.Sign(msg[:])
		require.NoError(err)
		pks[i] = kp.PublicKey
		sigs[i] = sig
	}
	return pks, sigs
}

func (s Suite) aggregate(sigs ...*bls.Signature) *bls.AggregateSignature {
	agg := bls.EmptyAggregateSignature(s.Backend)
	for _, sig := range sigs {
		agg.AddAssign(sig)
	}
	return agg
}

func (s Suite) testSignVerify(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	kp, err := s.NewKeyPair()
	require.NoError(err)
	sig, err := kp.Sign(msg[:])
	require.NoError(err)

	require.False(sig.IsEmpty())
	require.True(sig.Verify(msg, kp.PublicKey))

	wrongMsg := s.digest()
	require.False(sig.Verify(wrongMsg, kp.PublicKey))

	other, err := s.NewKeyPair()
	require.NoError(err)
	require.False(sig.Verify(msg, other.PublicKey))

	require.False(bls.EmptySignature(s.Backend).Verify(msg, kp.PublicKey))
}

func (s Suite) testFastAggregateVerify(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	pks, sigs := s.signers(require, 3, msg)

	agg := s.aggregate(sigs...)
	require.False(agg.IsEmpty())
	require.True(agg.FastAggregateVerify(msg, pks))

	wrongMsg := s.digest()
	require.False(agg.FastAggregateVerify(wrongMsg, pks))

	// Missing one signer's key.
	require.False(agg.FastAggregateVerify(msg, pks[:2]))

	// A single signature aggregates and verifies on its own.
	single := s.aggregate(sigs[0])
	require.True(single.FastAggregateVerify(msg, pks[:1]))
}

func (s Suite) testAggregateVerify(t *testing.T) {
	require := require.New(t)

	msgs := []bls.Hash256{s.digest(), s.digest()}
	pks := make([]*bls.PublicKey, len(msgs))
	agg := bls.EmptyAggregateSignature(s.Backend)
	for i, msg := range msgs {
		kp, err := s.NewKeyPair()
		require.NoError(err)
		sig, err := kp.Sign(msg[:])
		require.NoError(err)
		pks[i] = kp.PublicKey
		agg.AddAssign(sig)
	}

	require.True(agg.AggregateVerify(msgs, pks))

	// Swapping which key signed which message must not verify.
	require.False(agg.AggregateVerify(msgs, []*bls.PublicKey{pks[1], pks[0]}))
}

func (s Suite) testFoldOrderIndependence(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	pks, sigs := s.signers(require, 3, msg)

	abc := s.aggregate(sigs[0], sigs[1], sigs[2])
	cba := s.aggregate(sigs[2], sigs[1], sigs[0])
	require.Equal(abc.Bytes(), cba.Bytes())

	// Folding aggregates of aggregates reaches the same point.
	left := s.aggregate(sigs[0])
	left.AddAssignAggregate(s.aggregate(sigs[1], sigs[2]))
	require.Equal(abc.Bytes(), left.Bytes())

	require.True(abc.FastAggregateVerify(msg, pks))
	require.True(left.FastAggregateVerify(msg, pks))
}

func (s Suite) testZeroVsEmpty(t *testing.T) {
	require := require.New(t)

	zero := bls.ZeroAggregateSignature(s.Backend)
	empty := bls.EmptyAggregateSignature(s.Backend)

	require.False(zero.IsEmpty())
	require.True(empty.IsEmpty())
	require.NotEqual(zero.Bytes(), empty.Bytes())
	require.Equal([bls.SignatureLen]byte{}, empty.Bytes())

	// Folding the same signature into zero and into empty reaches the same
	// point even though the starting states differ.
	msg := s.digest()
	_, sigs := s.signers(require, 1, msg)
	zero.AddAssign(sigs[0])
	empty.AddAssign(sigs[0])
	require.False(empty.IsEmpty())
	require.Equal(zero.Bytes(), empty.Bytes())
}

func (s Suite) testNoopAbsorption(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	_, sigs := s.signers(require, 2, msg)
	agg := s.aggregate(sigs...)
	before := agg.Bytes()

	agg.AddAssign(nil)
	agg.AddAssign(bls.EmptySignature(s.Backend))
	agg.AddAssignAggregate(nil)
	agg.AddAssignAggregate(bls.EmptyAggregateSignature(s.Backend))
	require.Equal(before, agg.Bytes())

	// The empty aggregate also absorbs no-ops without leaving the empty
	// state.
	empty := bls.EmptyAggregateSignature(s.Backend)
	empty.AddAssign(bls.EmptySignature(s.Backend))
	empty.AddAssignAggregate(bls.EmptyAggregateSignature(s.Backend))
	require.True(empty.IsEmpty())
}

func (s Suite) testRoundTrip(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	pks, sigs := s.signers(require, 2, msg)
	agg := s.aggregate(sigs...)

	aggBytes := agg.Bytes()
	parsed, err := bls.AggregateSignatureFromBytes(s.Backend, aggBytes[:])
	require.NoError(err)
	require.False(parsed.IsEmpty())
	require.Equal(aggBytes, parsed.Bytes())
	require.True(parsed.FastAggregateVerify(msg, pks))

	// The identity round trips too.
	zero := bls.ZeroAggregateSignature(s.Backend)
	zeroBytes := zero.Bytes()
	parsedZero, err := bls.AggregateSignatureFromBytes(s.Backend, zeroBytes[:])
	require.NoError(err)
	require.False(parsedZero.IsEmpty())
	require.Equal(zeroBytes, parsedZero.Bytes())
}

func (s Suite) testEmptySentinel(t *testing.T) {
	require := require.New(t)

	empty := bls.EmptyAggregateSignature(s.Backend)
	require.Equal([bls.SignatureLen]byte{}, empty.Bytes())

	parsed, err := bls.AggregateSignatureFromBytes(s.Backend, make([]byte, bls.SignatureLen))
	require.NoError(err)
	require.True(parsed.IsEmpty())

	sig, err := bls.SignatureFromBytes(s.Backend, make([]byte, bls.SignatureLen))
	require.NoError(err)
	require.True(sig.IsEmpty())
}

func (s Suite) testVerificationFalseCases(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	pks, sigs := s.signers(require, 2, msg)
	agg := s.aggregate(sigs...)

	// No public keys.
	require.False(agg.FastAggregateVerify(msg, nil))
	require.False(agg.AggregateVerify(nil, nil))

	// Empty aggregate.
	empty := bls.EmptyAggregateSignature(s.Backend)
	require.False(empty.FastAggregateVerify(msg, pks))
	require.False(empty.AggregateVerify([]bls.Hash256{msg, msg}, pks))

	// Cardinality mismatch.
	require.False(agg.AggregateVerify([]bls.Hash256{msg}, pks))

	// Nil key in the set.
	require.False(agg.FastAggregateVerify(msg, []*bls.PublicKey{pks[0], nil}))
}

func (s Suite) testDecodeRejection(t *testing.T) {
	require := require.New(t)

	_, err := bls.AggregateSignatureFromBytes(s.Backend, make([]byte, bls.SignatureLen-1))
	require.Error(err)

	_, err = bls.AggregateSignatureFromBytes(s.Backend, make([]byte, bls.SignatureLen+1))
	require.Error(err)

	// Infinity flag with a nonzero body is never a valid point encoding.
	malformed := make([]byte, bls.SignatureLen)
	malformed[0] = 0xc0
	malformed[1] = 0x01
	_, err = bls.AggregateSignatureFromBytes(s.Backend, malformed)
	require.Error(err)

	_, err = bls.SignatureFromBytes(s.Backend, malformed)
	require.Error(err)

	_, err = bls.PublicKeyFromBytes(s.Backend, make([]byte, bls.PublicKeyLen-1))
	require.Error(err)

	// The identity element is not a valid public key.
	infinityKey := make([]byte, bls.PublicKeyLen)
	infinityKey[0] = 0xc0
	_, err = bls.PublicKeyFromBytes(s.Backend, infinityKey)
	require.Error(err)
}

func (s Suite) testHexRoundTrip(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	_, sigs := s.signers(require, 1, msg)
	agg := s.aggregate(sigs...)

	str := agg.String()
	require.Len(str, 2+2*bls.SignatureLen)

	parsed, err := bls.AggregateSignatureFromString(s.Backend, str)
	require.NoError(err)
	require.Equal(agg.Bytes(), parsed.Bytes())

	_, err = bls.AggregateSignatureFromString(s.Backend, str[2:])
	require.Error(err)

	_, err = bls.AggregateSignatureFromString(s.Backend, "0xzz"+str[4:])
	require.Error(err)
}

func (s Suite) testJSONRoundTrip(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	pks, sigs := s.signers(require, 1, msg)
	agg := s.aggregate(sigs...)

	aggJSON, err := json.Marshal(agg)
	require.NoError(err)

	parsed := bls.EmptyAggregateSignature(s.Backend)
	require.NoError(json.Unmarshal(aggJSON, parsed))
	require.Equal(agg.Bytes(), parsed.Bytes())

	pkJSON, err := json.Marshal(pks[0])
	require.NoError(err)

	parsedPK := bls.NewPublicKey(s.Backend, nil)
	require.NoError(json.Unmarshal(pkJSON, parsedPK))
	require.Equal(pks[0].Bytes(), parsedPK.Bytes())
}

func (s Suite) testTreeHash(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	_, sigs := s.signers(require, 1, msg)
	agg := s.aggregate(sigs...)

	aggBytes := agg.Bytes()
	require.Equal(hashing.MerkleRoot(aggBytes[:]), agg.HashTreeRoot())

	// The empty sentinel hashes as 96 zero bytes.
	empty := bls.EmptyAggregateSignature(s.Backend)
	require.Equal(hashing.MerkleRoot(make([]byte, bls.SignatureLen)), empty.HashTreeRoot())
	require.NotEqual(empty.HashTreeRoot(), agg.HashTreeRoot())
}

func (s Suite) testAggregatePublicKeys(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	pks, _ := s.signers(require, 3, msg)

	agg, err := bls.AggregatePublicKeys(s.Backend, pks)
	require.NoError(err)
	require.NotEqual([bls.PublicKeyLen]byte{}, agg.Bytes())

	// Aggregating a single key is the key itself.
	single, err := bls.AggregatePublicKeys(s.Backend, pks[:1])
	require.NoError(err)
	require.Equal(pks[0].Bytes(), single.Bytes())

	_, err = bls.AggregatePublicKeys(s.Backend, nil)
	require.Error(err)
}

func (s Suite) testCopyIsolation(t *testing.T) {
	require := require.New(t)

	msg := s.digest()
	_, sigs := s.signers(require, 2, msg)

	agg := s.aggregate(sigs[0])
	cp := agg.Copy()
	require.Equal(agg.Bytes(), cp.Bytes())

	cp.AddAssign(sigs[1])
	require.NotEqual(agg.Bytes(), cp.Bytes())

	expected := s.aggregate(sigs[0])
	require.Equal(expected.Bytes(), agg.Bytes())
}
