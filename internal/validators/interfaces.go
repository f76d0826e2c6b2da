// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound requests before they reach business
// logic or storage.
//
// A [Validator] accepts any supported value plus an optional list of field
// names. When fields are given only those are checked, in order, and the
// first failure is returned. Without fields a default set is checked.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
