package transcript

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/meeting-captioner/internal/config"
	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
	"github.com/nguyentantai21042004/meeting-captioner/pkg/executor"
)

type implTranscriber struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber backed by the whisper.cpp CLI.
func New(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Transcribe runs whisper on the audio file and parses its SRT output
// into ordered fragments.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath string) ([]Fragment, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.cfg.Threads, audioPath)

	// -ml/-mc 0 lift segment length and context limits, which matters
	// for hour-long meeting recordings.
	args := []string{
		"-m", t.cfg.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", t.cfg.Language,
		"-t", strconv.Itoa(t.cfg.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.cfg.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.cfg.BinaryPath, args...); err != nil {
		return nil, &Error{AudioPath: audioPath, Reason: "whisper failed", Err: err}
	}

	srtPath := outputPrefix + ".srt"
	data, err := os.ReadFile(srtPath)
	if err != nil {
		return nil, &Error{AudioPath: audioPath, Reason: "whisper produced no output", Err: err}
	}
	defer os.Remove(srtPath)

	fragments, err := ParseSRT(string(data))
	if err != nil {
		return nil, &Error{AudioPath: audioPath, Reason: "malformed whisper output", Err: err}
	}

	t.logger.Info(ctx, "Transcription completed: %d fragments", len(fragments))
	return fragments, nil
}

// FullText joins all fragment texts into one transcript string.
func FullText(fragments []Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " ")
}
