package caption

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/meeting-captioner/pkg/timecode"
)

// RenderSRT serializes captions in SubRip form: 1-based sequential
// indices, "HH:MM:SS,mmm --> HH:MM:SS,mmm" timing lines, entries
// separated by a blank line. Output is deterministic for identical
// input.
func RenderSRT(captions []Caption) []byte {
	var buf bytes.Buffer
	for i, c := range captions {
		fmt.Fprintf(&buf, "%d\n", i+1)
		fmt.Fprintf(&buf, "%s --> %s\n", timecode.SRT(c.StartTime), timecode.SRT(c.EndTime))
		fmt.Fprintf(&buf, "%s\n\n", strings.TrimSpace(c.Text))
	}
	return buf.Bytes()
}
