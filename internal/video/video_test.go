package video

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-captioner/internal/config"
	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
)

const probeJSON = `{
  "streams": [
    {"codec_type": "video", "width": 1280, "height": 720, "r_frame_rate": "30000/1001", "nb_frames": "900"},
    {"codec_type": "audio"}
  ],
  "format": {"duration": "30.03"}
}`

type fakeExecutor struct {
	output string
	err    error
	stream io.ReadCloser
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.output, f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.output, f.err
}

func (f *fakeExecutor) Stream(ctx context.Context, name string, args ...string) (io.ReadCloser, func() error, error) {
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.stream, func() error { return nil }, nil
}

func newTestMedia(exec *fakeExecutor) Media {
	cfg := config.FFmpegConfig{BinaryPath: "ffmpeg", ProbePath: "ffprobe"}
	return New(cfg, exec, logger.New("error"))
}

func writeTempVideo(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not a real video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadLocalFile(t *testing.T) {
	m := newTestMedia(&fakeExecutor{output: probeJSON})
	path := writeTempVideo(t, "meeting.mp4")

	local, meta, err := m.Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if local != path {
		t.Errorf("Load() path = %q, want %q", local, path)
	}
	if meta.Width != 1280 || meta.Height != 720 {
		t.Errorf("dimensions = %dx%d, want 1280x720", meta.Width, meta.Height)
	}
	if !meta.HasAudio {
		t.Error("HasAudio = false, want true")
	}
	if meta.FrameCount != 900 {
		t.Errorf("FrameCount = %d, want 900", meta.FrameCount)
	}
	if meta.FPS < 29.9 || meta.FPS > 30.0 {
		t.Errorf("FPS = %v, want ~29.97", meta.FPS)
	}
	if meta.SizeBytes == 0 {
		t.Error("SizeBytes = 0, want file size")
	}
}

func TestLoadErrors(t *testing.T) {
	m := newTestMedia(&fakeExecutor{output: probeJSON})

	tests := []struct {
		name   string
		source string
	}{
		{"missing file", filepath.Join(t.TempDir(), "missing.mp4")},
		{"remote source", "https://example.com/video.mp4"},
		{"unsupported format", writeTempVideo(t, "notes.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := m.Load(context.Background(), tt.source)
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("Load(%q) error = %v, want *LoadError", tt.source, err)
			}
		})
	}
}

func TestExtractAudioToolFailure(t *testing.T) {
	m := newTestMedia(&fakeExecutor{err: errors.New("no audio track")})

	_, err := m.ExtractAudio(context.Background(), "in.mp4", filepath.Join(t.TempDir(), "audio.wav"))
	var extractErr *ExtractionError
	if !errors.As(err, &extractErr) {
		t.Fatalf("ExtractAudio() error = %v, want *ExtractionError", err)
	}
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"25", 25},
		{"0/0", 0},
		{"junk", 0},
	}

	for _, tt := range tests {
		if got := parseFrameRate(tt.in); got != tt.want {
			t.Errorf("parseFrameRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPipeFrameSource(t *testing.T) {
	// Two 2x2 frames followed by EOF
	raw := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	src := &pipeFrameSource{
		r:    io.NopCloser(strings.NewReader(string(raw))),
		wait: func() error { return nil },
		opts: FrameOptions{Width: 2, Height: 2, SampleFPS: 2.0},
	}

	first, err := src.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if first.Index != 0 || first.Time != 0 {
		t.Errorf("first frame index/time = %d/%v", first.Index, first.Time)
	}

	second, err := src.Next()
	if err != nil {
		t.Fatalf("Next() error: %v", err)
	}
	if second.Index != 1 || second.Time != 0.5 {
		t.Errorf("second frame index/time = %d/%v, want 1/0.5", second.Index, second.Time)
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("Next() after stream end = %v, want io.EOF", err)
	}
}
