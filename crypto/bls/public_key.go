// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import "encoding/json"

// PublicKey is an opaque holder for a backend public key point. It is
// referenced, never consumed, by the verification operations.
type PublicKey struct {
	backend Backend
	point   PublicKeyPoint
}

// NewPublicKey wraps a backend public key point. Backend packages use this to
// surface keys they derived or decoded themselves.
func NewPublicKey(backend Backend, point PublicKeyPoint) *PublicKey {
	return &PublicKey{
		backend: backend,
		point:   point,
	}
}

// PublicKeyFromBytes parses the canonical 48 byte compressed encoding of a
// public key.
func PublicKeyFromBytes(backend Backend, pkBytes []byte) (*PublicKey, error) {
	if backend == nil {
		return nil, errNoBackend
	}
	if len(pkBytes) != PublicKeyLen {
		return nil, errInvalidPublicKeyLen
	}
	point, err := backend.PublicKeyPointFromBytes(pkBytes)
	if err != nil {
		return nil, err
	}
	return &PublicKey{
		backend: backend,
		point:   point,
	}, nil
}

// Bytes returns the canonical compressed encoding of the key.
func (pk *PublicKey) Bytes() [PublicKeyLen]byte {
	if pk.point == nil {
		return [PublicKeyLen]byte{}
	}
	return pk.point.ToBytes()
}

// Equal reports whether both keys have the same canonical encoding.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return other != nil && pk.Bytes() == other.Bytes()
}

// Copy returns a key that shares no mutable state with this one.
func (pk *PublicKey) Copy() *PublicKey {
	cp := &PublicKey{backend: pk.backend}
	if pk.point != nil {
		cp.point = pk.point.Copy()
	}
	return cp
}

func (pk *PublicKey) String() string {
	b := pk.Bytes()
	return encodeHex(b[:])
}

func (pk *PublicKey) MarshalText() ([]byte, error) {
	return []byte(pk.String()), nil
}

// UnmarshalText parses a 0x-prefixed hex encoding of a public key. The
// receiver must have been constructed with a backend.
func (pk *PublicKey) UnmarshalText(text []byte) error {
	if pk.backend == nil {
		return errNoBackend
	}
	pkBytes, err := decodeHex(string(text))
	if err != nil {
		return err
	}
	parsed, err := PublicKeyFromBytes(pk.backend, pkBytes)
	if err != nil {
		return err
	}
	pk.point = parsed.point
	return nil
}

func (pk *PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(pk.String())
}

func (pk *PublicKey) UnmarshalJSON(b []byte) error {
	var hexString string
	if err := json.Unmarshal(b, &hexString); err != nil {
		return err
	}
	return pk.UnmarshalText([]byte(hexString))
}

// AggregatePublicKey is an opaque holder for zero or more public keys folded
// into one point, as produced by AggregatePublicKeys.
type AggregatePublicKey struct {
	backend Backend
	point   AggregatePublicKeyPoint
}

// AggregatePublicKeys folds [pks] into a single aggregate key.
func AggregatePublicKeys(backend Backend, pks []*PublicKey) (*AggregatePublicKey, error) {
	if backend == nil {
		return nil, errNoBackend
	}
	points, err := publicKeyPoints(pks)
	if err != nil {
		return nil, err
	}
	point, err := backend.AggregatePublicKeys(points)
	if err != nil {
		return nil, err
	}
	return &AggregatePublicKey{
		backend: backend,
		point:   point,
	}, nil
}

// Bytes returns the canonical compressed encoding of the aggregate key.
func (apk *AggregatePublicKey) Bytes() [PublicKeyLen]byte {
	if apk.point == nil {
		return [PublicKeyLen]byte{}
	}
	return apk.point.ToBytes()
}

func (apk *AggregatePublicKey) String() string {
	b := apk.Bytes()
	return encodeHex(b[:])
}

// publicKeyPoints unwraps the backend points of [pks], erroring on nil keys.
func publicKeyPoints(pks []*PublicKey) ([]PublicKeyPoint, error) {
	points := make([]PublicKeyPoint, len(pks))
	for i, pk := range pks {
		if pk == nil || pk.point == nil {
			return nil, errNoPublicKeyPoint
		}
		points[i] = pk.point
	}
	return points, nil
}
