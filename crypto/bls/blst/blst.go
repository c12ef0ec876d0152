// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package blst backs the bls wrappers with the supranational/blst bindings.
// Signatures are compressed G2 points, public keys compressed G1 points.
package blst

import (
	"errors"

	"github.com/sebohe/lighthouse/crypto/bls"

	blst "github.com/supranational/blst/bindings/go"
)

var (
	errFailedSignatureDecompress  = errors.New("couldn't decompress signature")
	errInvalidSignature           = errors.New("invalid signature")
	errFailedPublicKeyDecompress  = errors.New("couldn't decompress public key")
	errInvalidPublicKey           = errors.New("invalid public key")
	errNoPublicKeys               = errors.New("no public keys")
	errForeignPublicKey           = errors.New("public key from a different backend")
	errFailedPublicKeyAggregation = errors.New("couldn't aggregate public keys")

	// infinitySignature is the compressed encoding of the G2 identity
	// element: the compression and infinity flag bits with a zero body.
	infinitySignature = [bls.SignatureLen]byte{0: 0xc0}
)

type backend struct{}

// New returns the blst-backed bls.Backend.
func New() bls.Backend {
	return backend{}
}

func (backend) Name() string {
	return "blst"
}

func (backend) ZeroAggregateSignaturePoint() bls.AggregateSignaturePoint {
	sig := new(blst.P2Affine).Uncompress(infinitySignature[:])
	agg := new(blst.P2Aggregate)
	agg.Add(sig, false)
	return &aggregateSignaturePoint{agg: agg}
}

func (backend) SignaturePointFromBytes(sigBytes []byte) (bls.SignaturePoint, error) {
	sig, err := decompressSignature(sigBytes)
	if err != nil {
		return nil, err
	}
	return &signaturePoint{sig: sig}, nil
}

func (backend) AggregateSignaturePointFromBytes(sigBytes []byte) (bls.AggregateSignaturePoint, error) {
	sig, err := decompressSignature(sigBytes)
	if err != nil {
		return nil, err
	}
	agg := new(blst.P2Aggregate)
	agg.Add(sig, false)
	return &aggregateSignaturePoint{agg: agg}, nil
}

func (backend) PublicKeyPointFromBytes(pkBytes []byte) (bls.PublicKeyPoint, error) {
	pk := new(blst.P1Affine).Uncompress(pkBytes)
	if pk == nil {
		return nil, errFailedPublicKeyDecompress
	}
	// KeyValidate performs the subgroup check and rejects the identity key.
	if !pk.KeyValidate() {
		return nil, errInvalidPublicKey
	}
	return &publicKeyPoint{pk: pk}, nil
}

func (backend) AggregatePublicKeys(pks []bls.PublicKeyPoint) (bls.AggregatePublicKeyPoint, error) {
	if len(pks) == 0 {
		return nil, errNoPublicKeys
	}
	affines, err := publicKeyAffines(pks)
	if err != nil {
		return nil, err
	}
	var agg blst.P1Aggregate
	if !agg.Aggregate(affines, false) {
		return nil, errFailedPublicKeyAggregation
	}
	return &aggregatePublicKeyPoint{pk: agg.ToAffine()}, nil
}

func decompressSignature(sigBytes []byte) (*blst.P2Affine, error) {
	sig := new(blst.P2Affine).Uncompress(sigBytes)
	if sig == nil {
		return nil, errFailedSignatureDecompress
	}
	// Subgroup check without the infinity check: the identity element is a
	// valid aggregate.
	if !sig.SigValidate(false) {
		return nil, errInvalidSignature
	}
	return sig, nil
}

func publicKeyAffines(pks []bls.PublicKeyPoint) ([]*blst.P1Affine, error) {
	affines := make([]*blst.P1Affine, len(pks))
	for i, pk := range pks {
		point, ok := pk.(*publicKeyPoint)
		if !ok {
			return nil, errForeignPublicKey
		}
		affines[i] = point.pk
	}
	return affines, nil
}

type signaturePoint struct {
	sig *blst.P2Affine
}

func (p *signaturePoint) ToBytes() [bls.SignatureLen]byte {
	var out [bls.SignatureLen]byte
	copy(out[:], p.sig.Compress())
	return out
}

func (p *signaturePoint) Verify(msg bls.Hash256, pk bls.PublicKeyPoint) bool {
	point, ok := pk.(*publicKeyPoint)
	if !ok {
		return false
	}
	return p.sig.Verify(false, point.pk, false, msg[:], ciphersuite)
}

func (p *signaturePoint) Copy() bls.SignaturePoint {
	sig := *p.sig
	return &signaturePoint{sig: &sig}
}

type publicKeyPoint struct {
	pk *blst.P1Affine
}

func (p *publicKeyPoint) ToBytes() [bls.PublicKeyLen]byte {
	var out [bls.PublicKeyLen]byte
	copy(out[:], p.pk.Compress())
	return out
}

func (p *publicKeyPoint) Copy() bls.PublicKeyPoint {
	pk := *p.pk
	return &publicKeyPoint{pk: &pk}
}

type aggregatePublicKeyPoint struct {
	pk *blst.P1Affine
}

func (p *aggregatePublicKeyPoint) ToBytes() [bls.PublicKeyLen]byte {
	var out [bls.PublicKeyLen]byte
	copy(out[:], p.pk.Compress())
	return out
}

// aggregateSignaturePoint always holds a non-nil accumulator seeded with at
// least the identity element, so in-place addition below never aliases the
// operand.
type aggregateSignaturePoint struct {
	agg *blst.P2Aggregate
}

func (p *aggregateSignaturePoint) AddPoint(sig bls.SignaturePoint) {
	point, ok := sig.(*signaturePoint)
	if !ok {
		return
	}
	p.agg.Add(point.sig, false)
}

func (p *aggregateSignaturePoint) AddAggregate(other bls.AggregateSignaturePoint) {
	point, ok := other.(*aggregateSignaturePoint)
	if !ok {
		return
	}
	p.agg.AddAggregate(point.agg)
}

func (p *aggregateSignaturePoint) ToBytes() [bls.SignatureLen]byte {
	var out [bls.SignatureLen]byte
	copy(out[:], p.agg.ToAffine().Compress())
	return out
}

func (p *aggregateSignaturePoint) FastAggregateVerify(msg bls.Hash256, pks []bls.PublicKeyPoint) bool {
	affines, err := publicKeyAffines(pks)
	if err != nil {
		return false
	}
	return p.agg.ToAffine().FastAggregateVerify(false, affines, msg[:], ciphersuite)
}

func (p *aggregateSignaturePoint) AggregateVerify(msgs []bls.Hash256, pks []bls.PublicKeyPoint) bool {
	affines, err := publicKeyAffines(pks)
	if err != nil {
		return false
	}
	messages := make([]blst.Message, len(msgs))
	for i := range msgs {
		messages[i] = msgs[i][:]
	}
	return p.agg.ToAffine().AggregateVerify(false, affines, false, messages, ciphersuite)
}

func (p *aggregateSignaturePoint) Copy() bls.AggregateSignaturePoint {
	agg := new(blst.P2Aggregate)
	agg.Add(p.agg.ToAffine(), false)
	return &aggregateSignaturePoint{agg: agg}
}
