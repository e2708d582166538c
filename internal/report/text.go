package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/meeting-captioner/pkg/timecode"
)

// FormatText renders the report as plain text.
func FormatText(r Report) string {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	b.WriteString(rule + "\n")
	b.WriteString(center(r.Title, 80) + "\n")
	b.WriteString(rule + "\n\n")
	fmt.Fprintf(&b, "Date: %s\n", r.Date.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Video: %s\n", r.VideoPath)
	fmt.Fprintf(&b, "Duration: %s\n\n", timecode.Readable(r.Duration))

	b.WriteString("SUMMARY\n" + thin + "\n")
	b.WriteString(r.Summary + "\n")

	if len(r.KeyPoints) > 0 {
		b.WriteString("KEY POINTS\n" + thin + "\n")
		for i, point := range r.KeyPoints {
			fmt.Fprintf(&b, "%d. %s\n", i+1, point)
		}
		b.WriteString("\n")
	}

	b.WriteString("SCENE BREAKDOWN\n" + thin + "\n")
	for _, s := range r.Scenes {
		fmt.Fprintf(&b, "Scene %d: %s\n", s.Number, timecode.Range(s.StartTime, s.EndTime))
		if s.Description != "" {
			fmt.Fprintf(&b, "  Description: %s\n", s.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("TRANSCRIPT\n" + thin + "\n")
	for _, s := range r.Sections {
		fmt.Fprintf(&b, "\n[%s]\n", timecode.Range(s.StartTime, s.EndTime))
		b.WriteString(s.Text + "\n")
	}

	return b.String()
}

// ExportText writes the plain-text rendering to path.
func ExportText(r Report, path string) error {
	if err := os.WriteFile(path, []byte(FormatText(r)), 0644); err != nil {
		return &Error{Path: path, Reason: "write text report", Err: err}
	}
	return nil
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}
