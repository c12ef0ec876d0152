// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package hashing

import "crypto/sha256"

const HashLen = sha256.Size

// Hash256 A 256 bit long hash value.
type Hash256 = [HashLen]byte

// ComputeHash256Array computes a cryptographically strong 256 bit hash of the
// input byte slice.
func ComputeHash256Array(buf []byte) Hash256 {
	return sha256.Sum256(buf)
}

// ComputeHash256 computes a cryptographically strong 256 bit hash of the input
// byte slice.
func ComputeHash256(buf []byte) []byte {
	arr := ComputeHash256Array(buf)
	return arr[:]
}

// MerkleRoot computes the merkle root of a packed byte string. The input is
// split into 32 byte chunks, zero padded to the next power of two chunks, and
// folded pairwise with sha256. An empty input hashes as a single zero chunk.
//
// This matches the consensus-layer hashing of fixed-width byte vectors, where
// the byte string is a single packed leaf with no subtree structure.
func MerkleRoot(packed []byte) Hash256 {
	numChunks := (len(packed) + HashLen - 1) / HashLen
	if numChunks == 0 {
		numChunks = 1
	}

	width := 1
	for width < numChunks {
		width *= 2
	}

	chunks := make([]Hash256, width)
	for i := 0; i < numChunks; i++ {
		end := (i + 1) * HashLen
		if end > len(packed) {
			end = len(packed)
		}
		copy(chunks[i][:], packed[i*HashLen:end])
	}

	for width > 1 {
		width /= 2
		var buf [2 * HashLen]byte
		for i := 0; i < width; i++ {
			copy(buf[:HashLen], chunks[2*i][:])
			copy(buf[HashLen:], chunks[2*i+1][:])
			chunks[i] = sha256.Sum256(buf[:])
		}
	}
	return chunks[0]
}
