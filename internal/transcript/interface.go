package transcript

import "context"

// Transcriber converts an audio file into ordered, non-overlapping
// time-coded fragments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) ([]Fragment, error)
}

// Fragment is one time-coded unit of transcribed speech.
type Fragment struct {
	ID         int     `json:"id"`
	StartTime  float64 `json:"start_time"`
	EndTime    float64 `json:"end_time"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// Duration returns the fragment length in seconds.
func (f Fragment) Duration() float64 {
	return f.EndTime - f.StartTime
}
