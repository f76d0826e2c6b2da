package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when the username or the email is
	// already taken.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the identifier.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrRecordNotFound is returned when the owner has no sealed record.
	ErrRecordNotFound = errors.New("sealed record was not found")

	// ErrProgressionNotFound is returned when the owner has no progression.
	ErrProgressionNotFound = errors.New("progression was not found")

	// ErrProgressionNotAdvanced is returned when an update would lower a
	// stored counter.
	ErrProgressionNotAdvanced = errors.New("progression would regress")

	// ErrLocalSaveNotFound is returned when the client cache has no row for
	// the owner.
	ErrLocalSaveNotFound = errors.New("local save was not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingLocalSave is returned when a cached game cannot be
	// marshalled or unmarshalled.
	ErrEncodingLocalSave = errors.New("failed to encode local save")
)
