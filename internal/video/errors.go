package video

import "fmt"

// LoadError reports a failure to resolve or probe a video source.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load video %q: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("load video %q: %s", e.Source, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ExtractionError reports a failed audio extraction, including a missing
// audio track.
type ExtractionError struct {
	VideoPath string
	Reason    string
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extract audio from %q: %s: %v", e.VideoPath, e.Reason, e.Err)
	}
	return fmt.Sprintf("extract audio from %q: %s", e.VideoPath, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
