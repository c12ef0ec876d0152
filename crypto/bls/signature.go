// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import (
	"bytes"
	"encoding/json"
)

// Signature wraps a single backend signature point. A Signature may be empty,
// holding no point at all; empty signatures serialize to the reserved
// all-zero pattern and contribute nothing when folded into an aggregate.
type Signature struct {
	backend Backend
	point   SignaturePoint
}

// NewSignature wraps a backend signature point. Backend packages use this to
// surface signatures they produced themselves.
func NewSignature(backend Backend, point SignaturePoint) *Signature {
	return &Signature{
		backend: backend,
		point:   point,
	}
}

// EmptySignature returns a signature holding no point.
func EmptySignature(backend Backend) *Signature {
	return &Signature{backend: backend}
}

// SignatureFromBytes parses the canonical 96 byte compressed encoding of a
// signature. The all-zero pattern parses as the empty signature.
func SignatureFromBytes(backend Backend, sigBytes []byte) (*Signature, error) {
	if backend == nil {
		return nil, errNoBackend
	}
	if len(sigBytes) != SignatureLen {
		return nil, errInvalidSignatureLen
	}
	if bytes.Equal(sigBytes, noneSignature[:]) {
		return EmptySignature(backend), nil
	}
	point, err := backend.SignaturePointFromBytes(sigBytes)
	if err != nil {
		return nil, err
	}
	return &Signature{
		backend: backend,
		point:   point,
	}, nil
}

// IsEmpty reports whether the signature holds no point.
func (s *Signature) IsEmpty() bool {
	return s.point == nil
}

// Bytes returns the canonical compressed encoding of the signature, or the
// reserved all-zero pattern if the signature is empty.
func (s *Signature) Bytes() [SignatureLen]byte {
	if s.point == nil {
		return noneSignature
	}
	return s.point.ToBytes()
}

// Verify reports whether this is a valid signature by [pk] over [msg]. An
// empty signature never verifies.
func (s *Signature) Verify(msg Hash256, pk *PublicKey) bool {
	if s.point == nil || pk == nil || pk.point == nil {
		return false
	}
	return s.point.Verify(msg, pk.point)
}

// Equal reports whether both signatures have the same canonical encoding.
func (s *Signature) Equal(other *Signature) bool {
	return other != nil && s.Bytes() == other.Bytes()
}

// Copy returns a signature that shares no mutable state with this one.
func (s *Signature) Copy() *Signature {
	cp := &Signature{backend: s.backend}
	if s.point != nil {
		cp.point = s.point.Copy()
	}
	return cp
}

func (s *Signature) String() string {
	b := s.Bytes()
	return encodeHex(b[:])
}

func (s *Signature) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a 0x-prefixed hex encoding of a signature. The
// receiver must have been constructed with a backend.
func (s *Signature) UnmarshalText(text []byte) error {
	if s.backend == nil {
		return errNoBackend
	}
	sigBytes, err := decodeHex(string(text))
	if err != nil {
		return err
	}
	parsed, err := SignatureFromBytes(s.backend, sigBytes)
	if err != nil {
		return err
	}
	s.point = parsed.point
	return nil
}

func (s *Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Signature) UnmarshalJSON(b []byte) error {
	var hexString string
	if err := json.Unmarshal(b, &hexString); err != nil {
		return err
	}
	return s.UnmarshalText([]byte(hexString))
}
