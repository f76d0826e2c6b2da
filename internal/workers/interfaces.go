// Package workers runs the client's background jobs.
//
// A Worker blocks in Run until its context is cancelled. Workers groups
// several of them and runs them side by side.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done or the job fails
// in a way it cannot recover from.
type Worker interface {
	Run(ctx context.Context) error
}
