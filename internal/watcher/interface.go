package watcher

import "context"

// Watcher monitors the input directory and submits new video files for
// processing.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// SubmitFunc hands one detected video file to the job layer.
type SubmitFunc func(ctx context.Context, filePath string) error
