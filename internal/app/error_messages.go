// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// save-keeper server handlers and by the client when it interprets their
// responses.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place lets the client map a response body back to a known failure.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmail is returned when a registration carries an email that
	// is not of the form local@domain.tld.
	MsgInvalidEmail = "invalid email address"

	// MsgInvalidLoginPassword is returned when the supplied credentials do
	// not match an account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the authenticated account attempts to
	// write a record that belongs to another account.
	MsgAccessDenied = "access denied"

	// MsgAccountAlreadyExists is returned when the username or the email is
	// already registered.
	MsgAccountAlreadyExists = "account already exists"

	// MsgSaveNotFound is returned when the account has no sealed record.
	MsgSaveNotFound = "save not found"

	// MsgProgressionNotFound is returned when the account has no
	// progression yet.
	MsgProgressionNotFound = "progression not found"

	// MsgProgressionRegression is returned when a pushed progression would
	// lower a stored counter.
	MsgProgressionRegression = "progression would regress"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"
)
