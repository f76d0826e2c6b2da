package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a password and a salt into a symmetric key.
//
// The derivation is deliberately slow (PBKDF2-HMAC-SHA256, 100 000
// iterations) so that brute-forcing a password from a stolen sealed record
// is expensive. It is deterministic: the same password and salt always give
// the same key, which is what allows a record to be opened later.
type KeyDeriver interface {
	// GenerateSalt returns SaltSize fresh random bytes.
	GenerateSalt() ([]byte, error)

	// DeriveKey returns a KeySize-byte key. An empty password is accepted;
	// a salt of any length other than SaltSize yields ErrInvalidSaltLength.
	DeriveKey(password string, salt []byte) ([]byte, error)
}

// SymmetricCodec seals and opens opaque payloads with a derived key.
//
// Seal always draws a fresh nonce or IV; callers cannot supply one.
type SymmetricCodec interface {
	Seal(plaintext, key []byte) (Sealed, error)
	Open(sealed Sealed, key []byte) ([]byte, error)
}

// Signer computes and verifies integrity signatures over progression
// counters with a server-held secret.
type Signer interface {
	Sign(value int32) []byte
	Verify(value int32, signature []byte) bool
}

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (hash, salt []byte, err error)
	Verify(password string, hash, salt []byte) bool
}
