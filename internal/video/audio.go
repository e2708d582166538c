package video

import (
	"context"
	"os"
)

// ExtractAudio extracts the audio track and converts it to 16kHz mono WAV,
// the format the transcription engine expects.
func (m *implMedia) ExtractAudio(ctx context.Context, videoPath, outputPath string) (string, error) {
	m.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, outputPath)

	args := []string{
		"-err_detect", "ignore_err",
		"-i", videoPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		outputPath,
	}

	if _, err := m.executor.Execute(ctx, m.cfg.BinaryPath, args...); err != nil {
		return "", &ExtractionError{VideoPath: videoPath, Reason: "ffmpeg failed", Err: err}
	}

	if _, err := os.Stat(outputPath); err != nil {
		return "", &ExtractionError{VideoPath: videoPath, Reason: "audio file not created", Err: err}
	}

	m.logger.Info(ctx, "Audio extracted successfully: %s", outputPath)
	return outputPath, nil
}
