// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RecordVersion selects the cipher layout of a [SealedRecord].
type RecordVersion int

const (
	// RecordVersionCBC marks legacy records sealed with AES-256-CBC and
	// PKCS7 padding. They carry a 16-byte IV and no tag, so they provide
	// confidentiality only.
	RecordVersionCBC RecordVersion = 1

	// RecordVersionAEAD marks records sealed with AES-256-GCM: a 12-byte
	// nonce and a detached 16-byte tag.
	RecordVersionAEAD RecordVersion = 2
)

// Fixed field sizes of a sealed record.
const (
	RecordSaltSize  = 16
	RecordNonceSize = 12
	RecordIVSize    = 16
	RecordTagSize   = 16
)

// String implements [fmt.Stringer].
func (v RecordVersion) String() string {
	switch v {
	case RecordVersionCBC:
		return "cbc"
	case RecordVersionAEAD:
		return "aead"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// SealedRecord is the persisted and transmitted unit of an encrypted save.
//
// The record is a tagged union over Version: the same Nonce field holds a
// GCM nonce for [RecordVersionAEAD] and a CBC IV for [RecordVersionCBC].
// Byte slices are encoded as standard base64 in JSON.
type SealedRecord struct {
	Version RecordVersion `json:"version"`
	Owner   string        `json:"username"`
	Salt    []byte        `json:"salt"`
	Nonce   []byte        `json:"nonce_or_iv"`
	Tag     []byte        `json:"tag,omitempty"`
	Data    []byte        `json:"data"`
}

// Validate checks that the record's field sizes match its version.
func (r SealedRecord) Validate() error {
	if len(r.Salt) != RecordSaltSize {
		return fmt.Errorf("%w: salt must be %d bytes, got %d", ErrMalformedRecord, RecordSaltSize, len(r.Salt))
	}
	if len(r.Data) == 0 {
		return fmt.Errorf("%w: empty data", ErrMalformedRecord)
	}

	switch r.Version {
	case RecordVersionAEAD:
		if len(r.Nonce) != RecordNonceSize {
			return fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrMalformedRecord, RecordNonceSize, len(r.Nonce))
		}
		if len(r.Tag) != RecordTagSize {
			return fmt.Errorf("%w: tag must be %d bytes, got %d", ErrMalformedRecord, RecordTagSize, len(r.Tag))
		}
	case RecordVersionCBC:
		if len(r.Nonce) != RecordIVSize {
			return fmt.Errorf("%w: iv must be %d bytes, got %d", ErrMalformedRecord, RecordIVSize, len(r.Nonce))
		}
		if len(r.Tag) != 0 {
			return fmt.Errorf("%w: cbc record must not carry a tag", ErrMalformedRecord)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedRecordVersion, r.Version)
	}

	return nil
}
