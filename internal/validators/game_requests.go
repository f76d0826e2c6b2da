package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-save-keeper/models"
)

// Field names accepted by [GameRequestValidator].
const (
	// FieldUsername requires Credentials.Username to be made of letters,
	// digits, '.', '_' and '-'.
	FieldUsername = "username"
	// FieldEmail requires Credentials.Email to look like local@domain.tld.
	FieldEmail = "email"
	// FieldIdentifier requires a username or an email for login.
	FieldIdentifier = "identifier"
	// FieldPassword targets Credentials.Password.
	FieldPassword = "password"

	// FieldOwner targets SealedRecord.Owner.
	FieldOwner = "owner"
	// FieldRecordLayout checks the record's field sizes against its version.
	FieldRecordLayout = "record_layout"

	// FieldCounters requires both progression counters to be non-negative.
	FieldCounters = "counters"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// no "/" (URL path segment) and no "@" (email login)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

// GameRequestValidator validates account credentials, sealed records and
// progression pushes.
type GameRequestValidator struct{}

func NewGameRequestValidator() Validator {
	return &GameRequestValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms of
// models.Credentials, models.SealedRecord and models.ProgressionPushRequest
// are supported; anything else yields ErrUnsupportedType.
func (v *GameRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.SealedRecord:
		return v.validateSealedRecord(value, fields...)
	case *models.SealedRecord:
		return v.validateSealedRecord(*value, fields...)

	case models.ProgressionPushRequest:
		return v.validateProgressionPush(value, fields...)
	case *models.ProgressionPushRequest:
		return v.validateProgressionPush(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials checks registration fields by default. Login passes
// FieldIdentifier and FieldPassword.
func (v *GameRequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			username := strings.TrimSpace(c.Username)
			if username == "" {
				return ErrEmptyUsername
			}
			if !usernamePattern.MatchString(username) {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if !emailPattern.MatchString(strings.TrimSpace(c.Email)) {
				return ErrInvalidEmail
			}
		case FieldIdentifier:
			if strings.TrimSpace(c.Identifier()) == "" {
				return ErrEmptyIdentifier
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameRequestValidator) validateSealedRecord(r models.SealedRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldRecordLayout}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if r.Owner == "" {
				return ErrEmptyOwner
			}
		case FieldRecordLayout:
			if err := r.Validate(); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *GameRequestValidator) validateProgressionPush(p models.ProgressionPushRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCounters}
	}

	for _, f := range fields {
		switch f {
		case FieldCounters:
			if p.MonstersKilled < 0 || p.DistanceTraveled < 0 {
				return ErrNegativeCounter
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
