// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

const (
	// NonceSize is the GCM nonce length, in bytes.
	NonceSize = 12
	// TagSize is the GCM authentication tag length, in bytes.
	TagSize = 16
)

// Sealed is the output of [SymmetricCodec.Seal]. Tag is empty for codecs
// that do not authenticate.
type Sealed struct {
	Nonce      []byte
	Tag        []byte
	Ciphertext []byte
}

// aeadCodec implements [SymmetricCodec] with AES-256-GCM and a detached tag.
type aeadCodec struct {
	random io.Reader
}

// NewAEADCodec returns the default [SymmetricCodec]: AES-256-GCM with a
// random 12-byte nonce and a 16-byte tag kept apart from the ciphertext.
func NewAEADCodec() SymmetricCodec {
	return &aeadCodec{random: rand.Reader}
}

func (c *aeadCodec) gcm(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyLength, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return cipher.NewGCMWithTagSize(block, TagSize)
}

// Seal implements [SymmetricCodec]. The returned ciphertext has the same
// length as plaintext.
func (c *aeadCodec) Seal(plaintext, key []byte) (Sealed, error) {
	gcm, err := c.gcm(key)
	if err != nil {
		return Sealed{}, err
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return Sealed{}, fmt.Errorf("generate nonce: %w", err)
	}

	// gcm.Seal returns ciphertext ‖ tag; split the tag out.
	out := gcm.Seal(nil, nonce, plaintext, nil)
	split := len(out) - TagSize

	return Sealed{
		Nonce:      nonce,
		Tag:        out[split:],
		Ciphertext: out[:split],
	}, nil
}

// Open implements [SymmetricCodec]. A tag mismatch yields
// ErrAuthenticationFailed and a nil plaintext.
func (c *aeadCodec) Open(sealed Sealed, key []byte) ([]byte, error) {
	if len(sealed.Nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrDecode, NonceSize, len(sealed.Nonce))
	}
	if len(sealed.Tag) != TagSize {
		return nil, fmt.Errorf("%w: tag must be %d bytes, got %d", ErrDecode, TagSize, len(sealed.Tag))
	}

	gcm, err := c.gcm(key)
	if err != nil {
		return nil, err
	}

	blob := make([]byte, 0, len(sealed.Ciphertext)+TagSize)
	blob = append(blob, sealed.Ciphertext...)
	blob = append(blob, sealed.Tag...)

	plaintext, err := gcm.Open(nil, sealed.Nonce, blob, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return plaintext, nil
}
