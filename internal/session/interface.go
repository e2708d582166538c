package session

import (
	"github.com/nguyentantai21042004/meeting-captioner/internal/video"
)

// Session owns one job's output directory tree:
//
//	<output>/<session>/videos/    captioned video
//	<output>/<session>/reports/   report files
//	<output>/<session>/frames/    representative scene frames
//	<output>/<session>/captions/  subtitle files
//	<output>/<session>/audio/     extracted audio and transcript text
type Session interface {
	Dir() string
	VideosDir() string
	ReportsDir() string

	// AudioPath is where the extracted mono track goes.
	AudioPath() string

	// TranscriptPath is the plain-text transcript artifact.
	TranscriptPath() string

	// CaptionPath returns the subtitle file path for a format, e.g. "srt".
	CaptionPath(format string) string

	// ReportPath returns a report file path for a base name and format.
	ReportPath(name, format string) string

	// SaveFrame persists a decoded frame as a PNG under frames/ and
	// returns its path.
	SaveFrame(frame video.Frame) (string, error)

	// WriteManifest writes a plain-text listing of everything the
	// session produced and returns its path.
	WriteManifest() (string, error)
}
