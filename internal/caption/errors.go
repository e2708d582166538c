package caption

import "fmt"

// RenderingError reports a failed subtitle burn-in, carrying the
// transcoding tool's diagnostic text. Burn-in is never retried.
type RenderingError struct {
	VideoPath string
	Reason    string
	Err       error
}

func (e *RenderingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("burn subtitles into %q: %s: %v", e.VideoPath, e.Reason, e.Err)
	}
	return fmt.Sprintf("burn subtitles into %q: %s", e.VideoPath, e.Reason)
}

func (e *RenderingError) Unwrap() error { return e.Err }
