package session

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
)

type implSession struct {
	dir    string
	logger logger.Logger
}

// New creates the session directory tree under outputRoot. An empty
// name gets a timestamped one.
func New(outputRoot, name string, log logger.Logger) (Session, error) {
	if name == "" {
		name = "session_" + time.Now().Format("20060102_150405")
	}
	dir := filepath.Join(outputRoot, name)

	s := &implSession{dir: dir, logger: log}
	for _, sub := range []string{s.VideosDir(), s.ReportsDir(), s.framesDir(), s.captionsDir(), s.audioDir()} {
		if err := os.MkdirAll(sub, 0755); err != nil {
			return nil, fmt.Errorf("create session dir %s: %w", sub, err)
		}
	}
	return s, nil
}

func (s *implSession) Dir() string        { return s.dir }
func (s *implSession) VideosDir() string  { return filepath.Join(s.dir, "videos") }
func (s *implSession) ReportsDir() string { return filepath.Join(s.dir, "reports") }

func (s *implSession) framesDir() string   { return filepath.Join(s.dir, "frames") }
func (s *implSession) captionsDir() string { return filepath.Join(s.dir, "captions") }
func (s *implSession) audioDir() string    { return filepath.Join(s.dir, "audio") }

func (s *implSession) AudioPath() string {
	return filepath.Join(s.audioDir(), "audio.wav")
}

func (s *implSession) TranscriptPath() string {
	return filepath.Join(s.audioDir(), "transcript.txt")
}

func (s *implSession) CaptionPath(format string) string {
	return filepath.Join(s.captionsDir(), "captions."+format)
}

func (s *implSession) ReportPath(name, format string) string {
	return filepath.Join(s.ReportsDir(), name+"."+format)
}
