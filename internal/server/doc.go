// Package server runs the REST server of save-keeper.
//
// It owns the HTTP listener lifecycle: startup, serving until the caller's
// context is cancelled, and graceful shutdown that lets in-flight requests
// finish.
package server
