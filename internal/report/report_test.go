package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/meeting-captioner/internal/scene"
	"github.com/nguyentantai21042004/meeting-captioner/internal/segment"
	"github.com/nguyentantai21042004/meeting-captioner/internal/transcript"
)

func sampleReport() Report {
	scenes := []scene.Scene{
		{Number: 1, StartTime: 0, EndTime: 30, StartFrame: 0, EndFrame: 150, ChangeScore: 0},
		{Number: 2, StartTime: 30, EndTime: 60, StartFrame: 150, EndFrame: 300, ChangeScore: 45.2, Description: "Scene change detected"},
	}
	sections := []segment.Section{
		{
			Number:    1,
			StartTime: 0,
			EndTime:   60,
			Fragments: []transcript.Fragment{
				{ID: 0, StartTime: 0, EndTime: 30, Text: "welcome everyone"},
				{ID: 1, StartTime: 30, EndTime: 60, Text: "first agenda item"},
			},
			Summary:   "Opening remarks",
			KeyPoints: []string{"welcome", "agenda"},
		},
	}
	return Build("", "/videos/standup.mp4", 60, scenes, sections, "welcome everyone first agenda item", nil)
}

func TestBuildDerivesTitle(t *testing.T) {
	r := sampleReport()
	if r.Title != "Meeting Report - standup" {
		t.Errorf("Title = %q", r.Title)
	}
}

func TestBuildAggregatesKeyPoints(t *testing.T) {
	r := sampleReport()
	if len(r.KeyPoints) != 2 {
		t.Fatalf("got %d key points, want 2", len(r.KeyPoints))
	}
	if r.KeyPoints[0] != "welcome" {
		t.Errorf("first key point = %q", r.KeyPoints[0])
	}
}

func TestBuildCapsKeyPoints(t *testing.T) {
	var sections []segment.Section
	for i := 0; i < 4; i++ {
		sections = append(sections, segment.Section{
			Number:    i + 1,
			Fragments: []transcript.Fragment{{Text: "x"}},
			KeyPoints: []string{"a", "b", "c", "d"},
		})
	}
	r := Build("t", "v.mp4", 10, nil, sections, "", nil)
	if len(r.KeyPoints) != maxReportKeyPoints {
		t.Errorf("got %d key points, want cap of %d", len(r.KeyPoints), maxReportKeyPoints)
	}
}

func TestBuildFlattensSectionText(t *testing.T) {
	r := sampleReport()
	if len(r.Sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(r.Sections))
	}
	if r.Sections[0].Text != "welcome everyone first agenda item" {
		t.Errorf("section text = %q", r.Sections[0].Text)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	r := sampleReport()
	path := filepath.Join(t.TempDir(), "report.json")

	if err := ExportJSON(r, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	loaded, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON() error: %v", err)
	}
	if loaded.Title != r.Title {
		t.Errorf("Title = %q, want %q", loaded.Title, r.Title)
	}
	if len(loaded.Scenes) != len(r.Scenes) || len(loaded.Sections) != len(r.Sections) {
		t.Errorf("loaded %d scenes / %d sections, want %d / %d",
			len(loaded.Scenes), len(loaded.Sections), len(r.Scenes), len(r.Sections))
	}
	if loaded.Sections[0].Summary != "Opening remarks" {
		t.Errorf("section summary = %q", loaded.Sections[0].Summary)
	}
}

func TestFormatText(t *testing.T) {
	text := FormatText(sampleReport())

	for _, want := range []string{
		"Meeting Report - standup",
		"SUMMARY",
		"KEY POINTS",
		"1. welcome",
		"SCENE BREAKDOWN",
		"Scene 2: 00:00:30 - 00:01:00",
		"TRANSCRIPT",
		"welcome everyone first agenda item",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text report missing %q", want)
		}
	}
}

func TestExportDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.docx")
	if err := ExportDOCX(sampleReport(), path); err != nil {
		t.Fatalf("ExportDOCX() error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx is empty")
	}
}
