package report

import (
	"time"

	"github.com/nguyentantai21042004/meeting-captioner/internal/scene"
)

// Report is the structured output of one pipeline run. The JSON form is
// the master artifact; other formats render from it on demand.
type Report struct {
	Title          string         `json:"title"`
	Date           time.Time      `json:"date"`
	VideoPath      string         `json:"video_path"`
	Duration       float64        `json:"duration"`
	Summary        string         `json:"summary"`
	KeyPoints      []string       `json:"key_points"`
	FullTranscript string         `json:"full_transcript"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	Scenes         []scene.Scene  `json:"scenes"`
	Sections       []Section      `json:"sections"`
}

// Section is the report view of a transcript section, with fragment
// text flattened into one string.
type Section struct {
	StartTime float64  `json:"start_time"`
	EndTime   float64  `json:"end_time"`
	Text      string   `json:"text"`
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}
