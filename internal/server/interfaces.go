package server

import "context"

// Server is a transport server with a context-driven lifecycle.
type Server interface {
	// RunServer serves until ctx is cancelled, then shuts down gracefully.
	// It returns early with an error if the listener cannot be started.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx expires.
	Shutdown(ctx context.Context) error
}
