// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kyber backs the bls wrappers with the drand/kyber BLS12-381 suite.
// It is pure Go, making it the backend of choice where cgo is unavailable.
//
// The canonical encodings match the blst backend byte for byte; signatures do
// not cross-verify between backends because the hash-to-curve domain
// separation tags differ.
package kyber

import (
	"errors"

	"github.com/drand/kyber"
	"github.com/drand/kyber/pairing"
	signbls "github.com/drand/kyber/sign/bls"

	bls12381 "github.com/drand/kyber-bls12381"

	"github.com/sebohe/lighthouse/crypto/bls"
)

var (
	errDecompressSignature = errors.New("couldn't decompress signature")
	errDecompressPublicKey = errors.New("couldn't decompress public key")
	errIdentityPublicKey   = errors.New("identity public key")
	errNoPublicKeys        = errors.New("no public keys")
	errForeignPublicKey    = errors.New("public key from a different backend")

	suite  pairing.Suite = bls12381.NewBLS12381Suite()
	scheme               = signbls.NewSchemeOnG2(suite)
)

type backend struct{}

// New returns the kyber-backed bls.Backend.
func New() bls.Backend {
	return backend{}
}

func (backend) Name() string {
	return "kyber"
}

func (backend) ZeroAggregateSignaturePoint() bls.AggregateSignaturePoint {
	return &aggregateSignaturePoint{point: suite.G2().Point().Null()}
}

func (backend) SignaturePointFromBytes(sigBytes []byte) (bls.SignaturePoint, error) {
	point, err := signatureFromBytes(sigBytes)
	if err != nil {
		return nil, err
	}
	return &signaturePoint{point: point}, nil
}

func (backend) AggregateSignaturePointFromBytes(sigBytes []byte) (bls.AggregateSignaturePoint, error) {
	point, err := signatureFromBytes(sigBytes)
	if err != nil {
		return nil, err
	}
	return &aggregateSignaturePoint{point: point}, nil
}

func (backend) PublicKeyPointFromBytes(pkBytes []byte) (bls.PublicKeyPoint, error) {
	point := suite.G1().Point()
	if err := point.UnmarshalBinary(pkBytes); err != nil {
		return nil, errDecompressPublicKey
	}
	if point.Equal(suite.G1().Point().Null()) {
		return nil, errIdentityPublicKey
	}
	return &publicKeyPoint{point: point}, nil
}

func (backend) AggregatePublicKeys(pks []bls.PublicKeyPoint) (bls.AggregatePublicKeyPoint, error) {
	if len(pks) == 0 {
		return nil, errNoPublicKeys
	}
	points, err := publicKeyValues(pks)
	if err != nil {
		return nil, err
	}
	return &aggregatePublicKeyPoint{
		point: scheme.AggregatePublicKeys(points...),
	}, nil
}

// signatureFromBytes decodes a compressed G2 point. The underlying curve
// library rejects encodings off the curve or outside the prime-order
// subgroup.
func signatureFromBytes(sigBytes []byte) (kyber.Point, error) {
	point := suite.G2().Point()
	if err := point.UnmarshalBinary(sigBytes); err != nil {
		return nil, errDecompressSignature
	}
	return point, nil
}

func publicKeyValues(pks []bls.PublicKeyPoint) ([]kyber.Point, error) {
	points := make([]kyber.Point, len(pks))
	for i, pk := range pks {
		point, ok := pk.(*publicKeyPoint)
		if !ok {
			return nil, errForeignPublicKey
		}
		points[i] = point.point
	}
	return points, nil
}

func hashToG2(msg []byte) kyber.Point {
	return suite.G2().Point().(kyber.HashablePoint).Hash(msg)
}

func compress96(point kyber.Point) [bls.SignatureLen]byte {
	var out [bls.SignatureLen]byte
	b, err := point.MarshalBinary()
	if err != nil {
		// Marshaling an in-memory point cannot fail for this suite.
		return out
	}
	copy(out[:], b)
	return out
}

type signaturePoint struct {
	point kyber.Point // G2
}

func (p *signaturePoint) ToBytes() [bls.SignatureLen]byte {
	return compress96(p.point)
}

func (p *signaturePoint) Verify(msg bls.Hash256, pk bls.PublicKeyPoint) bool {
	point, ok := pk.(*publicKeyPoint)
	if !ok {
		return false
	}
	sig, err := p.point.MarshalBinary()
	if err != nil {
		return false
	}
	return scheme.Verify(point.point, msg[:], sig) == nil
}

func (p *signaturePoint) Copy() bls.SignaturePoint {
	return &signaturePoint{point: p.point.Clone()}
}

type publicKeyPoint struct {
	point kyber.Point // G1
}

func (p *publicKeyPoint) ToBytes() [bls.PublicKeyLen]byte {
	var out [bls.PublicKeyLen]byte
	b, err := p.point.MarshalBinary()
	if err != nil {
		return out
	}
	copy(out[:], b)
	return out
}

func (p *publicKeyPoint) Copy() bls.PublicKeyPoint {
	return &publicKeyPoint{point: p.point.Clone()}
}

type aggregatePublicKeyPoint struct {
	point kyber.Point // G1
}

func (p *aggregatePublicKeyPoint) ToBytes() [bls.PublicKeyLen]byte {
	var out [bls.PublicKeyLen]byte
	b, err := p.point.MarshalBinary()
	if err != nil {
		return out
	}
	copy(out[:], b)
	return out
}

type aggregateSignaturePoint struct {
	point kyber.Point // G2
}

func (p *aggregateSignaturePoint) AddPoint(sig bls.SignaturePoint) {
	point, ok := sig.(*signaturePoint)
	if !ok {
		return
	}
	p.point.Add(p.point, point.point)
}

func (p *aggregateSignaturePoint) AddAggregate(other bls.AggregateSignaturePoint) {
	point, ok := other.(*aggregateSignaturePoint)
	if !ok {
		return
	}
	p.point.Add(p.point, point.point)
}

func (p *aggregateSignaturePoint) ToBytes() [bls.SignatureLen]byte {
	return compress96(p.point)
}

func (p *aggregateSignaturePoint) FastAggregateVerify(msg bls.Hash256, pks []bls.PublicKeyPoint) bool {
	points, err := publicKeyValues(pks)
	if err != nil || len(points) == 0 {
		return false
	}
	sig, err := p.point.MarshalBinary()
	if err != nil {
		return false
	}
	return scheme.Verify(scheme.AggregatePublicKeys(points...), msg[:], sig) == nil
}

// AggregateVerify checks the pairing product equation directly:
// e(g1, sig) == prod_i e(pk_i, H(msg_i)).
func (p *aggregateSignaturePoint) AggregateVerify(msgs []bls.Hash256, pks []bls.PublicKeyPoint) bool {
	points, err := publicKeyValues(pks)
	if err != nil || len(points) != len(msgs) || len(points) == 0 {
		return false
	}
	left := suite.Pair(suite.G1().Point().Base(), p.point)
	right := suite.GT().Point().Null()
	for i, point := range points {
		right.Add(right, suite.Pair(point, hashToG2(msgs[i][:])))
	}
	return left.Equal(right)
}

func (p *aggregateSignaturePoint) Copy() bls.AggregateSignaturePoint {
	return &aggregateSignaturePoint{point: p.point.Clone()}
}
