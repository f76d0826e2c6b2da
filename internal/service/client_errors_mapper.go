// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-save-keeper/internal/adapter"
	"github.com/MKhiriev/go-save-keeper/internal/app"
	"github.com/MKhiriev/go-save-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidEmail:
			return ErrInvalidEmail
		default:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrOwnerMismatch

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgAccountAlreadyExists:
			return store.ErrAccountAlreadyExists
		case app.MsgProgressionRegression:
			return ErrProgressionRegression
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

// describeAuthError turns a failed register or login into the message shown
// to the player.
func describeAuthError(err error) string {
	switch mapped := mapAdapterError(err); {
	case errors.Is(mapped, ErrWrongPassword):
		return "Invalid username/email or password."
	case errors.Is(mapped, store.ErrAccountAlreadyExists):
		return "An account with that username or email already exists."
	case errors.Is(mapped, ErrInvalidEmail):
		return "Please enter a valid email address."
	case errors.Is(mapped, ErrInvalidDataProvided):
		return "Username, email and password are required."
	default:
		return "The server could not be reached. Please try again later."
	}
}
