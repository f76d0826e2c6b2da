package models

import "errors"

var (
	// ErrMalformedRecord is returned when a sealed record's fields do not
	// match the sizes its version requires.
	ErrMalformedRecord = errors.New("malformed sealed record")

	// ErrUnsupportedRecordVersion is returned for a version tag this build
	// cannot open.
	ErrUnsupportedRecordVersion = errors.New("unsupported sealed record version")
)
