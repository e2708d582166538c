package report

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/meeting-captioner/pkg/timecode"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// ExportDOCX renders the report as a styled Word document.
func ExportDOCX(r Report, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return &Error{Path: path, Reason: "create document", Err: err}
	}

	addRun(doc.AddParagraph(""), r.Title, true, 16)
	addRun(doc.AddParagraph(""), "Date: "+r.Date.Format("2006-01-02 15:04:05"), false, fontSize)
	addRun(doc.AddParagraph(""), "Video: "+r.VideoPath, false, fontSize)
	addRun(doc.AddParagraph(""), "Duration: "+timecode.Readable(r.Duration), false, fontSize)
	doc.AddParagraph("")

	addRun(doc.AddParagraph(""), "Summary", true, 15)
	addRun(doc.AddParagraph(""), r.Summary, false, fontSize)

	if len(r.KeyPoints) > 0 {
		addRun(doc.AddParagraph(""), "Key Points", true, 15)
		for _, point := range r.KeyPoints {
			addRun(doc.AddParagraph(""), "• "+point, false, fontSize)
		}
	}

	addRun(doc.AddParagraph(""), "Scene Breakdown", true, 15)
	for _, s := range r.Scenes {
		line := fmt.Sprintf("Scene %d: %s", s.Number, timecode.Range(s.StartTime, s.EndTime))
		if s.Description != "" {
			line += " - " + s.Description
		}
		addRun(doc.AddParagraph(""), line, false, fontSize)
	}

	addRun(doc.AddParagraph(""), "Transcript", true, 15)
	for _, s := range r.Sections {
		addRun(doc.AddParagraph(""), "["+timecode.Range(s.StartTime, s.EndTime)+"]", true, fontSize)
		addRun(doc.AddParagraph(""), s.Text, false, fontSize)
	}

	if err := doc.SaveTo(path); err != nil {
		return &Error{Path: path, Reason: "save document", Err: err}
	}
	return nil
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
