// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kyber

import (
	"github.com/drand/kyber"
	"github.com/drand/kyber/util/random"

	"github.com/sebohe/lighthouse/crypto/bls"
)

type SecretKey = kyber.Scalar

func NewSecretKey() (SecretKey, error) {
	sk, _ := scheme.NewKeyPair(random.New())
	return sk, nil
}

func PublicFromSecretKey(sk SecretKey) *bls.PublicKey {
	return bls.NewPublicKey(New(), &publicKeyPoint{
		point: suite.G1().Point().Mul(sk, nil),
	})
}

func Sign(sk SecretKey, msg []byte) (*bls.Signature, error) {
	sigBytes, err := scheme.Sign(sk, msg)
	if err != nil {
		return nil, err
	}
	point, err := signatureFromBytes(sigBytes)
	if err != nil {
		return nil, err
	}
	return bls.NewSignature(New(), &signaturePoint{point: point}), nil
}
