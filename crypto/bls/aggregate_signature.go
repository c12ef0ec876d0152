// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"bytes"
	"encoding/json"

	"github.com/sebohe/lighthouse/utils/hashing"
)

// AggregateSignature is zero or more signatures folded into a single point.
//
// An aggregate is either empty, holding no point, or holding a point. A nil
// point is the empty state; the curve identity element is a real point and is
// NOT empty, even though the two states behave identically under further
// folding. Once an aggregate holds a point it never returns to the empty
// state.
//
// The zero value is unusable; construct aggregates with
// ZeroAggregateSignature, EmptyAggregateSignature or
// AggregateSignatureFromBytes. Values are not safe for concurrent mutation.
type AggregateSignature struct {
	backend Backend
	point   AggregateSignaturePoint
}

// ZeroAggregateSignature returns an aggregate holding the curve identity
// element.
func ZeroAggregateSignature(backend Backend) *AggregateSignature {
	return &AggregateSignature{
		backend: backend,
		point:   backend.ZeroAggregateSignaturePoint(),
	}
}

// EmptyAggregateSignature returns an aggregate holding no point.
func EmptyAggregateSignature(backend Backend) *AggregateSignature {
	return &AggregateSignature{backend: backend}
}

// AggregateSignatureFromBytes parses the canonical 96 byte compressed
// encoding of an aggregate signature. The all-zero pattern parses as the
// empty aggregate; any other pattern must decode to a valid point in the
// correct subgroup.
func AggregateSignatureFromBytes(backend Backend, sigBytes []byte) (*AggregateSignature, error) {
	if backend == nil {
		return nil, errNoBackend
	}
	if len(sigBytes) != SignatureLen {
		return nil, errInvalidSignatureLen
	}
	if bytes.Equal(sigBytes, noneSignature[:]) {
		return EmptyAggregateSignature(backend), nil
	}
	point, err := backend.AggregateSignaturePointFromBytes(sigBytes)
	if err != nil {
		return nil, err
	}
	return &AggregateSignature{
		backend: backend,
		point:   point,
	}, nil
}

// AggregateSignatureFromString parses the 0x-prefixed hex encoding of an
// aggregate signature.
func AggregateSignatureFromString(backend Backend, str string) (*AggregateSignature, error) {
	if backend == nil {
		return nil, errNoBackend
	}
	sigBytes, err := decodeHex(str)
	if err != nil {
		return nil, err
	}
	return AggregateSignatureFromBytes(backend, sigBytes)
}

// IsEmpty reports whether the aggregate holds no point. The identity
// aggregate is not empty.
func (s *AggregateSignature) IsEmpty() bool {
	return s.point == nil
}

// AddAssign folds one signature into this aggregate in place. Folding an
// empty signature is a no-op. Folding into an empty aggregate first installs
// the identity element, so empty + sig and zero + sig produce the same point.
func (s *AggregateSignature) AddAssign(sig *Signature) {
	if sig == nil || sig.point == nil {
		return
	}
	if s.point == nil {
		s.point = s.backend.ZeroAggregateSignaturePoint()
	}
	s.point.AddPoint(sig.point)
}

// AddAssignAggregate folds another aggregate into this one in place. Folding
// an empty aggregate is a no-op. [other] is unchanged.
func (s *AggregateSignature) AddAssignAggregate(other *AggregateSignature) {
	if other == nil || other.point == nil {
		return
	}
	if s.point == nil {
		s.point = s.backend.ZeroAggregateSignaturePoint()
	}
	s.point.AddAggregate(other.point)
}

// Bytes returns the canonical compressed encoding of the aggregate, or the
// reserved all-zero pattern if the aggregate is empty.
func (s *AggregateSignature) Bytes() [SignatureLen]byte {
	if s.point == nil {
		return noneSignature
	}
	return s.point.ToBytes()
}

// FastAggregateVerify reports whether this aggregate is the sum of one
// signature by every key in [pks] over the same [msg]. An empty key set or an
// empty aggregate never verifies; there is no error path.
func (s *AggregateSignature) FastAggregateVerify(msg Hash256, pks []*PublicKey) bool {
	if len(pks) == 0 || s.point == nil {
		return false
	}
	points, err := publicKeyPoints(pks)
	if err != nil {
		return false
	}
	return s.point.FastAggregateVerify(msg, points)
}

// AggregateVerify reports whether this aggregate is the sum of one signature
// by pks[i] over msgs[i] for every i. Empty inputs, a length mismatch, or an
// empty aggregate never verify; there is no error path.
//
// This primarily exists for tests. Production paths verify with
// FastAggregateVerify.
func (s *AggregateSignature) AggregateVerify(msgs []Hash256, pks []*PublicKey) bool {
	if len(msgs) == 0 || len(msgs) != len(pks) {
		return false
	}
	if s.point == nil {
		return false
	}
	points, err := publicKeyPoints(pks)
	if err != nil {
		return false
	}
	return s.point.AggregateVerify(msgs, points)
}

// Equal reports whether both aggregates have the same canonical encoding.
// The empty aggregate and the identity aggregate are not equal.
func (s *AggregateSignature) Equal(other *AggregateSignature) bool {
	return other != nil && s.Bytes() == other.Bytes()
}

// Copy returns an aggregate that shares no mutable state with this one.
func (s *AggregateSignature) Copy() *AggregateSignature {
	cp := &AggregateSignature{backend: s.backend}
	if s.point != nil {
		cp.point = s.point.Copy()
	}
	return cp
}

// HashTreeRoot hashes the canonical encoding as a single packed leaf: three
// 32 byte chunks merkleized with zero padding to four.
func (s *AggregateSignature) HashTreeRoot() Hash256 {
	b := s.Bytes()
	return hashing.MerkleRoot(b[:])
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is always
// exactly 96 bytes.
func (s *AggregateSignature) MarshalBinary() ([]byte, error) {
	b := s.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The receiver must
// have been constructed with a backend.
func (s *AggregateSignature) UnmarshalBinary(data []byte) error {
	if s.backend == nil {
		return errNoBackend
	}
	parsed, err := AggregateSignatureFromBytes(s.backend, data)
	if err != nil {
		return err
	}
	s.point = parsed.point
	return nil
}

// String returns the 0x-prefixed hex encoding, which doubles as the debug
// rendering.
func (s *AggregateSignature) String() string {
	b := s.Bytes()
	return encodeHex(b[:])
}

func (s *AggregateSignature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a 0x-prefixed hex encoding. The receiver must have
// been constructed with a backend.
func (s *AggregateSignature) UnmarshalText(text []byte) error {
	if s.backend == nil {
		return errNoBackend
	}
	parsed, err := AggregateSignatureFromString(s.backend, string(text))
	if err != nil {
		return err
	}
	s.point = parsed.point
	return nil
}

func (s *AggregateSignature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AggregateSignature) UnmarshalJSON(b []byte) error {
	var hexString string
	if err := json.Unmarshal(b, &hexString); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(hexString))
}
