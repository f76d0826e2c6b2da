package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// passwordHasher implements [PasswordHasher] with PBKDF2-HMAC-SHA256.
type passwordHasher struct {
	deriver *keyDeriver
}

// NewPasswordHasher returns a [PasswordHasher] using a 16-byte random salt,
// 100 000 iterations and a 32-byte digest.
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{deriver: newKeyDeriver()}
}

// Hash implements [PasswordHasher].
func (p *passwordHasher) Hash(password string) ([]byte, []byte, error) {
	salt, err := p.deriver.GenerateSalt()
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	hash, err := p.deriver.DeriveKey(password, salt)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	return hash, salt, nil
}

// Verify implements [PasswordHasher]. It accepts salts of any length so
// that hashes imported from older stores keep working.
func (p *passwordHasher) Verify(password string, hash, salt []byte) bool {
	if len(hash) == 0 || len(salt) == 0 {
		return false
	}

	candidate := pbkdf2.Key([]byte(password), salt, p.deriver.iterations, len(hash), sha256.New)
	return subtle.ConstantTimeCompare(candidate, hash) == 1
}
