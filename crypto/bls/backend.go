// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package bls

// The interfaces in this file are the capability contract a pairing library
// must satisfy to back the wrapper types. Points are opaque: callers only
// observe canonical byte encodings and verification results.
//
// Backends must guarantee that no point ever serializes to all zero bytes;
// that pattern is reserved for the empty-signature sentinel.

// SignaturePoint is a single signature point on the backend curve.
type SignaturePoint interface {
	// ToBytes returns the canonical compressed encoding of the point.
	ToBytes() [SignatureLen]byte

	// Verify reports whether this point is a valid signature by [pk] over
	// [msg].
	Verify(msg Hash256, pk PublicKeyPoint) bool

	// Copy returns a point that shares no mutable state with this one.
	Copy() SignaturePoint
}

// PublicKeyPoint is a single public key point on the backend curve.
type PublicKeyPoint interface {
	ToBytes() [PublicKeyLen]byte
	Copy() PublicKeyPoint
}

// AggregatePublicKeyPoint is zero or more public keys folded into one point.
type AggregatePublicKeyPoint interface {
	ToBytes() [PublicKeyLen]byte
}

// AggregateSignaturePoint is zero or more signatures folded into one point.
// Addition is commutative and associative, so folding the same multiset of
// points in any order yields the same point.
type AggregateSignaturePoint interface {
	// AddPoint adds a single signature point into this point in place.
	// Points produced by a different backend are ignored.
	AddPoint(sig SignaturePoint)

	// AddAggregate adds another aggregate point into this point in place.
	// [other] is not retained and not modified.
	AddAggregate(other AggregateSignaturePoint)

	// ToBytes returns the canonical compressed encoding of the point.
	ToBytes() [SignatureLen]byte

	// FastAggregateVerify reports whether this point is the aggregate of
	// signatures by every key in [pks] over the same [msg].
	FastAggregateVerify(msg Hash256, pks []PublicKeyPoint) bool

	// AggregateVerify reports whether this point is the aggregate of
	// signatures by pks[i] over msgs[i] for every i. Callers guarantee
	// len(msgs) == len(pks) > 0.
	AggregateVerify(msgs []Hash256, pks []PublicKeyPoint) bool

	// Copy returns a point that shares no mutable state with this one.
	Copy() AggregateSignaturePoint
}

// Backend constructs and decodes points for one pairing library. A Backend is
// chosen once by the caller and threaded through the wrapper constructors;
// implementations must be safe for concurrent use.
type Backend interface {
	// Name identifies the backing library, for diagnostics only.
	Name() string

	// ZeroAggregateSignaturePoint returns the curve identity element. Adding
	// it to any point leaves that point unchanged.
	ZeroAggregateSignaturePoint() AggregateSignaturePoint

	// SignaturePointFromBytes decodes the canonical compressed encoding of a
	// signature point, rejecting encodings that are not valid points in the
	// correct subgroup.
	SignaturePointFromBytes(sigBytes []byte) (SignaturePoint, error)

	// AggregateSignaturePointFromBytes is SignaturePointFromBytes for an
	// aggregate point. The identity element is a valid encoding.
	AggregateSignaturePointFromBytes(sigBytes []byte) (AggregateSignaturePoint, error)

	// PublicKeyPointFromBytes decodes the canonical compressed encoding of a
	// public key, rejecting invalid points and the identity element.
	PublicKeyPointFromBytes(pkBytes []byte) (PublicKeyPoint, error)

	// AggregatePublicKeys folds one or more public keys into a single
	// aggregate key point. Errors if [pks] is empty or contains points from
	// a different backend.
	AggregatePublicKeys(pks []PublicKeyPoint) (AggregatePublicKeyPoint, error)
}
