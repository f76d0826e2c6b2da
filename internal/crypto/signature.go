// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"sync"
)

// SignatureSize is the length of an HMAC-SHA256 signature, in bytes.
const SignatureSize = sha256.Size

// signer implements [Signer] with HMAC-SHA256.
//
// The signed message is the 4-byte little-endian two's-complement encoding
// of the value. Existing stored signatures were produced with that layout,
// so it is part of the wire contract.
type signer struct {
	pool sync.Pool
}

// NewSigner returns a [Signer] keyed by secret. An empty secret is a
// configuration error and yields ErrEmptySecret.
//
// HMAC instances are pooled to avoid an allocation per signature on the
// leaderboard path, where every row is verified.
func NewSigner(secret []byte) (Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	key := append([]byte(nil), secret...)
	s := &signer{}
	s.pool.New = func() any {
		return hmac.New(sha256.New, key)
	}

	return s, nil
}

// Sign implements [Signer].
func (s *signer) Sign(value int32) []byte {
	h := s.pool.Get().(hash.Hash)
	h.Reset()

	h.Write(encodeInt32(value))
	sum := h.Sum(nil)

	h.Reset()
	s.pool.Put(h)

	return sum
}

// Verify implements [Signer]. The comparison runs in constant time.
func (s *signer) Verify(value int32, signature []byte) bool {
	if len(signature) != SignatureSize {
		return false
	}
	return hmac.Equal(s.Sign(value), signature)
}

func encodeInt32(value int32) []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(value))
	return buf[:]
}
