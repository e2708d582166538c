package transcript

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-captioner/pkg/timecode"
)

// ParseSRT parses SubRip subtitle content into ordered fragments.
// Whisper reports no per-fragment confidence in SRT output, so fragments
// carry a confidence of 1.
func ParseSRT(content string) ([]Fragment, error) {
	var fragments []Fragment

	blocks := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n")
	for _, block := range blocks {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if len(lines) < 2 {
			continue
		}

		// First line is the sequence number, second the timing line.
		timingIdx := 1
		if !strings.Contains(lines[0], "-->") && !strings.Contains(lines[1], "-->") {
			continue
		}
		if strings.Contains(lines[0], "-->") {
			timingIdx = 0
		}

		start, end, err := parseTiming(lines[timingIdx])
		if err != nil {
			return nil, err
		}

		text := strings.TrimSpace(strings.Join(lines[timingIdx+1:], "\n"))
		if text == "" {
			continue
		}

		fragments = append(fragments, Fragment{
			ID:         len(fragments),
			StartTime:  start,
			EndTime:    end,
			Text:       text,
			Confidence: 1,
		})
	}

	return fragments, nil
}

func parseTiming(line string) (float64, float64, error) {
	startStr, endStr, found := strings.Cut(line, "-->")
	if !found {
		return 0, 0, fmt.Errorf("invalid SRT timing line %q", line)
	}

	start, err := timecode.Parse(strings.TrimSpace(startStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid SRT start time: %w", err)
	}
	end, err := timecode.Parse(strings.TrimSpace(endStr))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid SRT end time: %w", err)
	}
	return start, end, nil
}
