package segment

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/meeting-captioner/internal/transcript"
)

// Segmenter groups transcript fragments into topical sections and
// enriches each with a summary and key points.
type Segmenter interface {
	Segment(ctx context.Context, fragments []transcript.Fragment) ([]Section, error)
}

// Enricher produces a summary and key points for a section's text.
// Implementations may be model-backed or purely local; callers never
// branch on which is active.
type Enricher interface {
	Summarize(ctx context.Context, text string) (string, error)
	ExtractKeyPoints(ctx context.Context, text string, maxPoints int) ([]string, error)
}

// Section is a maximal grouping of consecutive fragments bounded by
// pause and duration rules. Sections partition the fragment sequence
// exactly: every fragment lands in one section, in original order.
type Section struct {
	Number    int                   `json:"section_number"`
	StartTime float64               `json:"start_time"`
	EndTime   float64               `json:"end_time"`
	Fragments []transcript.Fragment `json:"fragments"`
	Summary   string                `json:"summary"`
	KeyPoints []string              `json:"key_points"`
}

// Text returns the combined text of all fragments in the section.
func (s Section) Text() string {
	parts := make([]string, 0, len(s.Fragments))
	for _, f := range s.Fragments {
		parts = append(parts, f.Text)
	}
	return strings.Join(parts, " ")
}

// Duration returns the section length in seconds.
func (s Section) Duration() float64 {
	return s.EndTime - s.StartTime
}
