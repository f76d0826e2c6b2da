// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until the user quits,
	// input ends or ctx is cancelled.
	Run(ctx context.Context) error
}

// PasswordPrompt reads a password after printing prompt.
type PasswordPrompt func(prompt string) (string, error)
