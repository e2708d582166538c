package executor

import (
	"context"
	"io"
)

// Executor defines the interface for executing external commands
type Executor interface {
	// Execute runs a command and returns its stdout.
	Execute(ctx context.Context, name string, args ...string) (string, error)

	// ExecuteInDir runs a command with its working directory pinned to dir.
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)

	// Stream starts a command and returns its stdout as a stream. The
	// returned wait function must be called once the reader is drained;
	// it reports the command's exit status.
	Stream(ctx context.Context, name string, args ...string) (io.ReadCloser, func() error, error)
}
