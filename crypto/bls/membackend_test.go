// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

import "errors"

const memPointFlag = 0x80

var errMemInvalidPoint = errors.New("invalid mem point")

// memBackend is an in-memory stand-in for a pairing library, used to test the
// wrapper invariants without curve arithmetic. A point is its own encoding:
// byte zero carries a flag bit so no point serializes to all zeros, and
// addition xors the body, which is commutative and associative like curve
// addition. Verification always succeeds, so the false cases observed in
// tests are produced by the wrappers alone.
type memBackend struct{}

func newMemBackend() Backend {
	return memBackend{}
}

func (memBackend) Name() string {
	return "mem"
}

func (memBackend) ZeroAggregateSignaturePoint() AggregateSignaturePoint {
	p := &memAggregatePoint{}
	p.bytes[0] = memPointFlag
	return p
}

func (memBackend) SignaturePointFromBytes(sigBytes []byte) (SignaturePoint, error) {
	if sigBytes[0]&memPointFlag == 0 {
		return nil, errMemInvalidPoint
	}
	p := &memSignaturePoint{}
	copy(p.bytes[:], sigBytes)
	return p, nil
}

func (memBackend) AggregateSignaturePointFromBytes(sigBytes []byte) (AggregateSignaturePoint, error) {
	if sigBytes[0]&memPointFlag == 0 {
		return nil, errMemInvalidPoint
	}
	p := &memAggregatePoint{}
	copy(p.bytes[:], sigBytes)
	return p, nil
}

func (memBackend) PublicKeyPointFromBytes(pkBytes []byte) (PublicKeyPoint, error) {
	if pkBytes[0]&memPointFlag == 0 {
		return nil, errMemInvalidPoint
	}
	p := &memPublicKeyPoint{}
	copy(p.bytes[:], pkBytes)
	return p, nil
}

func (memBackend) AggregatePublicKeys(pks []PublicKeyPoint) (AggregatePublicKeyPoint, error) {
	if len(pks) == 0 {
		return nil, errMemInvalidPoint
	}
	agg := &memPublicKeyPoint{}
	agg.bytes[0] = memPointFlag
	for _, pk := range pks {
		point, ok := pk.(*memPublicKeyPoint)
		if !ok {
			return nil, errMemInvalidPoint
		}
		for i := 1; i < PublicKeyLen; i++ {
			agg.bytes[i] ^= point.bytes[i]
		}
	}
	return agg, nil
}

type memSignaturePoint struct {
	bytes [SignatureLen]byte
}

func (p *memSignaturePoint) ToBytes() [SignatureLen]byte {
	return p.bytes
}

func (*memSignaturePoint) Verify(Hash256, PublicKeyPoint) bool {
	return true
}

func (p *memSignaturePoint) Copy() SignaturePoint {
	cp := *p
	return &cp
}

type memPublicKeyPoint struct {
	bytes [PublicKeyLen]byte
}

func (p *memPublicKeyPoint) ToBytes() [PublicKeyLen]byte {
	return p.bytes
}

func (p *memPublicKeyPoint) Copy() PublicKeyPoint {
	cp := *p
	return &cp
}

type memAggregatePoint struct {
	bytes [SignatureLen]byte
}

func (p *memAggregatePoint) AddPoint(sig SignaturePoint) {
	point, ok := sig.(*memSignaturePoint)
	if !ok {
		return
	}
	for i := 1; i < SignatureLen; i++ {
		p.bytes[i] ^= point.bytes[i]
	}
}

func (p *memAggregatePoint) AddAggregate(other AggregateSignaturePoint) {
	point, ok := other.(*memAggregatePoint)
	if !ok {
		return
	}
	for i := 1; i < SignatureLen; i++ {
		p.bytes[i] ^= point.bytes[i]
	}
}

func (p *memAggregatePoint) ToBytes() [SignatureLen]byte {
	return p.bytes
}

func (*memAggregatePoint) FastAggregateVerify(Hash256, []PublicKeyPoint) bool {
	return true
}

func (*memAggregatePoint) AggregateVerify([]Hash256, []PublicKeyPoint) bool {
	return true
}

func (p *memAggregatePoint) Copy() AggregateSignaturePoint {
	cp := *p
	return &cp
}

// memSignature builds a Signature whose encoding is the flag byte followed by
// [payload].
func memSignature(payload ...byte) *Signature {
	var sigBytes [SignatureLen]byte
	sigBytes[0] = memPointFlag
	copy(sigBytes[1:], payload)
	sig, err := SignatureFromBytes(newMemBackend(), sigBytes[:])
	if err != nil {
		panic(err)
	}
	return sig
}

// memPublicKey builds a PublicKey whose encoding is the flag byte followed by
// [payload].
func memPublicKey(payload ...byte) *PublicKey {
	var pkBytes [PublicKeyLen]byte
	pkBytes[0] = memPointFlag
	copy(pkBytes[1:], payload)
	pk, err := PublicKeyFromBytes(newMemBackend(), pkBytes[:])
	if err != nil {
		panic(err)
	}
	return pk
}
