package caption

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// subtitleFilename is the fixed ASCII name the subtitle payload is
// written under inside the working directory. FFmpeg's subtitles filter
// chokes on paths with drive letters, colons, and non-ASCII characters,
// so the filter only ever sees this bare filename with the process cwd
// pinned to the working directory.
const subtitleFilename = "captions.srt"

func (r *implRenderer) BurnIn(ctx context.Context, videoPath string, subtitle []byte, outputDir, outputName string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", &RenderingError{VideoPath: videoPath, Reason: "create output dir", Err: err}
	}
	outputPath := filepath.Join(outputDir, SanitizeFilename(outputName))

	workDir, err := os.MkdirTemp(r.tempRoot, "burn-*")
	if err != nil {
		return "", &RenderingError{VideoPath: videoPath, Reason: "create work dir", Err: err}
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			r.logger.Warn(ctx, "Failed to clean up burn-in work dir %s: %v", workDir, err)
		}
	}()

	if err := os.WriteFile(filepath.Join(workDir, subtitleFilename), subtitle, 0644); err != nil {
		return "", &RenderingError{VideoPath: videoPath, Reason: "write subtitle file", Err: err}
	}

	absVideoPath, err := filepath.Abs(videoPath)
	if err != nil {
		return "", &RenderingError{VideoPath: videoPath, Reason: "resolve video path", Err: err}
	}
	workOutput := filepath.Join(workDir, "output.mp4")

	args := []string{
		"-y",
		"-i", absVideoPath,
		"-vf", fmt.Sprintf("subtitles=%s", subtitleFilename),
		"-c:v", r.cfg.Encoder,
		"-preset", r.cfg.Preset,
		"-crf", strconv.Itoa(r.cfg.CRF),
		"-c:a", "copy",
		workOutput,
	}

	r.logger.Info(ctx, "Burning subtitles into video: %s", videoPath)
	r.logger.Debug(ctx, "FFmpeg command in dir %s: %s -vf subtitles=%s ...", workDir, r.cfg.BinaryPath, subtitleFilename)

	if _, err := r.executor.ExecuteInDir(ctx, workDir, r.cfg.BinaryPath, args...); err != nil {
		return "", &RenderingError{VideoPath: videoPath, Reason: "transcoding tool failed", Err: err}
	}

	// Cross-device rename can fail; fall back to a copy.
	if err := os.Rename(workOutput, outputPath); err != nil {
		if err := copyFile(workOutput, outputPath); err != nil {
			return "", &RenderingError{VideoPath: videoPath, Reason: "move output to final location", Err: err}
		}
	}

	r.logger.Info(ctx, "Captioned video written: %s", outputPath)
	return outputPath, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
