package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrInvalidUsername = errors.New("username may only contain letters, digits, '.', '_' and '-'")
	ErrEmptyIdentifier = errors.New("username or email is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyOwner      = errors.New("record owner is required")
	ErrNegativeCounter = errors.New("progression counters must not be negative")
)
