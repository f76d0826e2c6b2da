package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrOwnerMismatch = errors.New("record owner does not match the authenticated account")

	// ErrProgressionRegression is returned when a pushed progression would
	// lower a stored counter.
	ErrProgressionRegression = errors.New("progression would regress")
)

var (
	// ErrLoadFailed is the single outcome of every failed load: wrong
	// password, tampered data, malformed record or unknown version. The
	// cause stays in the chain for logging.
	ErrLoadFailed = errors.New("could not load save")

	// ErrSaveFailed wraps failures while sealing a save.
	ErrSaveFailed = errors.New("could not seal save")

	// ErrSignatureInvalid is returned when a cached progression does not
	// match its signature and was dropped.
	ErrSignatureInvalid = errors.New("progression signature is invalid")

	// ErrNotLoggedIn is returned by client operations that need an account.
	ErrNotLoggedIn = errors.New("not logged in")
)
