// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-save-keeper/internal/crypto"
	"github.com/MKhiriev/go-save-keeper/models"
)

type saveCodec struct {
	deriver      crypto.KeyDeriver
	codecs       map[models.RecordVersion]crypto.SymmetricCodec
	writeVersion models.RecordVersion
}

// NewSaveCodec returns a [SaveCodec] that seals new saves with AES-256-GCM
// and opens both AEAD and legacy CBC records.
func NewSaveCodec() SaveCodec {
	return newSaveCodec(crypto.NewKeyDeriver(), models.RecordVersionAEAD)
}

// NewLegacySaveCodec returns a [SaveCodec] that writes CBC records. It exists
// for peers that cannot read AEAD records yet.
func NewLegacySaveCodec() SaveCodec {
	return newSaveCodec(crypto.NewKeyDeriver(), models.RecordVersionCBC)
}

func newSaveCodec(deriver crypto.KeyDeriver, writeVersion models.RecordVersion) *saveCodec {
	return &saveCodec{
		deriver: deriver,
		codecs: map[models.RecordVersion]crypto.SymmetricCodec{
			models.RecordVersionCBC:  crypto.NewCBCCodec(),
			models.RecordVersionAEAD: crypto.NewAEADCodec(),
		},
		writeVersion: writeVersion,
	}
}

// Save implements [SaveCodec].
func (s *saveCodec) Save(state any, owner, password string) (models.SealedRecord, error) {
	plaintext, err := json.Marshal(state)
	if err != nil {
		return models.SealedRecord{}, fmt.Errorf("%w: encode state: %w", ErrSaveFailed, err)
	}

	salt, err := s.deriver.GenerateSalt()
	if err != nil {
		return models.SealedRecord{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	key, err := s.deriver.DeriveKey(password, salt)
	if err != nil {
		return models.SealedRecord{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	defer crypto.Wipe(key)

	sealed, err := s.codecs[s.writeVersion].Seal(plaintext, key)
	if err != nil {
		return models.SealedRecord{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	return models.SealedRecord{
		Version: s.writeVersion,
		Owner:   owner,
		Salt:    salt,
		Nonce:   sealed.Nonce,
		Tag:     sealed.Tag,
		Data:    sealed.Ciphertext,
	}, nil
}

// Load implements [SaveCodec].
func (s *saveCodec) Load(record models.SealedRecord, password string, target any) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	codec, ok := s.codecs[record.Version]
	if !ok {
		return fmt.Errorf("%w: %w: %s", ErrLoadFailed, models.ErrUnsupportedRecordVersion, record.Version)
	}

	key, err := s.deriver.DeriveKey(password, record.Salt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer crypto.Wipe(key)

	plaintext, err := codec.Open(crypto.Sealed{
		Nonce:      record.Nonce,
		Tag:        record.Tag,
		Ciphertext: record.Data,
	}, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	if err = json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrLoadFailed, crypto.ErrDecode, err)
	}

	return nil
}
