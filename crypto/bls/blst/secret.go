// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package blst

import (
	"crypto/rand"
	"errors"

	"github.com/sebohe/lighthouse/crypto/bls"

	blst "github.com/supranational/blst/bindings/go"
)

const SecretKeyLen = blst.BLST_SCALAR_BYTES

var (
	errFailedSecretKeyDeserialize = errors.New("couldn't deserialize secret key")

	// More commonly known as G2ProofOfPossession
	ciphersuite = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")
)

type SecretKey = blst.SecretKey

func NewSecretKey() (*SecretKey, error) {
	var ikm [32]byte
	_, err := rand.Read(ikm[:])
	if err != nil {
		return nil, err
	}
	sk := blst.KeyGen(ikm[:])
	ikm = [32]byte{} // zero out the ikm
	return sk, nil
}

func SecretKeyFromBytes(skBytes []byte) (*SecretKey, error) {
	sk := new(SecretKey).Deserialize(skBytes)
	if sk == nil {
		return nil, errFailedSecretKeyDeserialize
	}
	return sk, nil
}

func SecretKeyToBytes(sk *SecretKey) []byte {
	return sk.Serialize()
}

func PublicFromSecretKey(sk *SecretKey) *bls.PublicKey {
	return bls.NewPublicKey(New(), &publicKeyPoint{
		pk: new(blst.P1Affine).From(sk),
	})
}

func Sign(sk *SecretKey, msg []byte) *bls.Signature {
	return bls.NewSignature(New(), &signaturePoint{
		sig: new(blst.P2Affine).Sign(sk, msg, ciphersuite),
	})
}
