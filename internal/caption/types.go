package caption

import (
	"github.com/nguyentantai21042004/meeting-captioner/internal/transcript"
)

// Caption is one subtitle entry. Indices are 1-based and contiguous.
type Caption struct {
	Index     int     `json:"index"`
	StartTime float64 `json:"start_time"`
	EndTime   float64 `json:"end_time"`
	Text      string  `json:"text"`
}

// FromFragments builds one caption per transcript fragment, renumbering
// from 1 regardless of fragment ids.
func FromFragments(fragments []transcript.Fragment) []Caption {
	captions := make([]Caption, 0, len(fragments))
	for i, f := range fragments {
		captions = append(captions, Caption{
			Index:     i + 1,
			StartTime: f.StartTime,
			EndTime:   f.EndTime,
			Text:      f.Text,
		})
	}
	return captions
}
