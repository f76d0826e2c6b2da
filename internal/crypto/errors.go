package crypto

import "errors"

var (
	// ErrInvalidSaltLength is the key derivation error: the salt is not
	// exactly SaltSize bytes.
	ErrInvalidSaltLength = errors.New("invalid salt length")

	// ErrInvalidKeyLength is returned when a codec receives a key that is
	// not KeySize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrAuthenticationFailed means the GCM tag did not match: wrong
	// password or a corrupted record. No plaintext is released.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrDecode covers malformed nonces, tags, block alignment and padding.
	ErrDecode = errors.New("decode error")

	// ErrEmptySecret is returned when a signer is built without a secret.
	ErrEmptySecret = errors.New("signature secret is empty")
)
