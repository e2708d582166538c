package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-captioner/internal/scene"
	"github.com/nguyentantai21042004/meeting-captioner/internal/segment"
)

// maxReportKeyPoints caps the aggregated key-point list across all
// sections.
const maxReportKeyPoints = 10

// Build aggregates one run's results into a Report. An empty title gets
// one derived from the video filename.
func Build(title, videoPath string, duration float64, scenes []scene.Scene, sections []segment.Section, fullTranscript string, metadata map[string]any) Report {
	if title == "" {
		base := filepath.Base(videoPath)
		title = "Meeting Report - " + strings.TrimSuffix(base, filepath.Ext(base))
	}

	r := Report{
		Title:          title,
		Date:           time.Now(),
		VideoPath:      videoPath,
		Duration:       duration,
		FullTranscript: fullTranscript,
		Metadata:       metadata,
		Scenes:         scenes,
		Sections:       make([]Section, 0, len(sections)),
	}

	for _, s := range sections {
		r.Sections = append(r.Sections, Section{
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Text:      s.Text(),
			Summary:   s.Summary,
			KeyPoints: s.KeyPoints,
		})
		for _, p := range s.KeyPoints {
			if len(r.KeyPoints) < maxReportKeyPoints {
				r.KeyPoints = append(r.KeyPoints, p)
			}
		}
	}

	r.Summary = fmt.Sprintf(
		"Meeting video analyzed: %s\nDuration: %.1f minutes\nScenes detected: %d\nTranscript sections: %d\n",
		filepath.Base(videoPath), duration/60, len(scenes), len(sections),
	)
	return r
}
