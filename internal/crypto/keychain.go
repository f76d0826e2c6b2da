// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of every KDF salt, in bytes.
	SaltSize = 16
	// KeySize is the length of a derived key (AES-256), in bytes.
	KeySize = 32
	// PBKDF2Iterations is the fixed iteration count of the KDF.
	PBKDF2Iterations = 100_000
)

// keyDeriver is the private implementation of [KeyDeriver].
type keyDeriver struct {
	random     io.Reader
	iterations int
	keyLen     int
}

// NewKeyDeriver constructs a [KeyDeriver] backed by PBKDF2-HMAC-SHA256 with
// 100 000 iterations and a 256-bit output, reading salts from crypto/rand.
func NewKeyDeriver() KeyDeriver {
	return newKeyDeriver()
}

func newKeyDeriver() *keyDeriver {
	return &keyDeriver{
		random:     rand.Reader,
		iterations: PBKDF2Iterations,
		keyLen:     KeySize,
	}
}

// GenerateSalt implements [KeyDeriver]. It reads 16 random bytes from the
// OS CSPRNG. Salts are not secret and are stored next to the ciphertext.
func (k *keyDeriver) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyDeriver].
func (k *keyDeriver) DeriveKey(password string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidSaltLength, SaltSize, len(salt))
	}

	return pbkdf2.Key([]byte(password), salt, k.iterations, k.keyLen, sha256.New), nil
}

// Wipe overwrites b with zeros. Derived keys are wiped as soon as the
// operation that needed them returns.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
