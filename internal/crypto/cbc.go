// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// IVSize is the CBC initialization vector length, in bytes.
const IVSize = aes.BlockSize

// cbcCodec implements [SymmetricCodec] with AES-256-CBC and PKCS7 padding.
//
// CBC gives confidentiality only. Ciphertext bit flips go undetected unless
// padding or deserialization happens to break, so records in this format
// depend on the progression signature for the fields that matter.
type cbcCodec struct {
	random io.Reader
}

// NewCBCCodec returns the legacy [SymmetricCodec]. New saves use
// [NewAEADCodec]; this one exists to open and, when explicitly asked,
// write records for older clients.
func NewCBCCodec() SymmetricCodec {
	return &cbcCodec{random: rand.Reader}
}

func (c *cbcCodec) block(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKeyLength, KeySize, len(key))
	}
	return aes.NewCipher(key)
}

// Seal implements [SymmetricCodec]. The ciphertext is padded to the block
// size; Tag is always empty.
func (c *cbcCodec) Seal(plaintext, key []byte) (Sealed, error) {
	block, err := c.block(key)
	if err != nil {
		return Sealed{}, err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return Sealed{}, fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return Sealed{Nonce: iv, Ciphertext: ciphertext}, nil
}

// Open implements [SymmetricCodec]. Misaligned input or invalid padding
// yields ErrDecode.
func (c *cbcCodec) Open(sealed Sealed, key []byte) ([]byte, error) {
	if len(sealed.Nonce) != IVSize {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrDecode, IVSize, len(sealed.Nonce))
	}
	if len(sealed.Ciphertext) == 0 || len(sealed.Ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrDecode)
	}

	block, err := c.block(key)
	if err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(sealed.Ciphertext))
	cipher.NewCBCDecrypter(block, sealed.Nonce).CryptBlocks(plaintext, sealed.Ciphertext)

	return pkcs7Unpad(plaintext, aes.BlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padded length", ErrDecode)
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", ErrDecode)
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, fmt.Errorf("%w: invalid padding", ErrDecode)
		}
	}

	return data[:len(data)-n], nil
}
