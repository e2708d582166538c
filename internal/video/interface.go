package video

import "context"

// Media defines the video I/O operations the pipeline depends on:
// resolving a source to a local file, probing metadata, extracting the
// audio track and decoding frames for scene analysis.
type Media interface {
	// Load resolves a video source to a local file path and probes its
	// metadata. Unsupported sources return a *LoadError.
	Load(ctx context.Context, source string) (string, *Metadata, error)

	// ExtractAudio writes the video's audio track as mono 16kHz WAV.
	ExtractAudio(ctx context.Context, videoPath, outputPath string) (string, error)

	// OpenFrames starts decoding downscaled grayscale frames.
	OpenFrames(ctx context.Context, videoPath string, opts FrameOptions) (FrameSource, error)
}

// FrameSource yields decoded frames in presentation order. Next returns
// io.EOF once the stream is exhausted. Close releases the decoder.
type FrameSource interface {
	Next() (Frame, error)
	Close() error
}

// FrameOptions controls the decoded frame geometry and sampling cadence.
type FrameOptions struct {
	Width     int
	Height    int
	SampleFPS float64
}
