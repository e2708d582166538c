package caption

import "context"

// Renderer drives the external transcoding tool to burn subtitles into
// a video. Subtitle file generation itself is pure and lives in the
// package-level functions.
type Renderer interface {
	// BurnIn writes the subtitle payload into a disposable working
	// directory and re-encodes the video with the subtitles composited
	// in. The returned path uses the sanitized form of outputName and
	// lives under outputDir.
	BurnIn(ctx context.Context, videoPath string, subtitle []byte, outputDir, outputName string) (string, error)
}
