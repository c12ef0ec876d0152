// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bls implements backend-agnostic wrappers around BLS12-381 aggregate
// signatures. The curve arithmetic and pairing checks are delegated to a
// pluggable Backend; this package owns the wrapper invariants: the
// empty-signature sentinel, order-independent aggregation, and the canonical
// 96 byte serialization shared by the binary, tree-hash and hex encodings.
package bls

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/sebohe/lighthouse/utils/hashing"
)

const (
	// SignatureLen is the length of the canonical compressed G2 encoding
	// shared by signatures and aggregate signatures.
	SignatureLen = 96

	// PublicKeyLen is the length of the canonical compressed G1 encoding of a
	// public key.
	PublicKeyLen = 48
)

// Hash256 is the 32 byte message digest that signatures are made over.
type Hash256 = hashing.Hash256

// noneSignature is the reserved wire pattern meaning "no signature present".
// Backends guarantee that no real point ever serializes to all zeros, so the
// pattern is unambiguous.
var noneSignature [SignatureLen]byte

var (
	errNoBackend           = errors.New("no bls backend")
	errInvalidSignatureLen = errors.New("invalid signature length")
	errInvalidPublicKeyLen = errors.New("invalid public key length")
	errMissingHexPrefix    = errors.New("missing 0x prefix to hex encoding")
	errNoPublicKeyPoint    = errors.New("public key has no point")
)

// encodeHex returns the 0x-prefixed lowercase hex string of [b].
func encodeHex(b []byte) string {
	return fmt.Sprintf("0x%x", b)
}

// decodeHex decodes a 0x-prefixed hex string. Malformed hex is rejected here,
// before any point validation.
func decodeHex(str string) ([]byte, error) {
	if !strings.HasPrefix(str, "0x") {
		return nil, errMissingHexPrefix
	}
	return hex.DecodeString(str[2:])
}
