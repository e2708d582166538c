package transcript

import "fmt"

// Error reports a failed transcription run.
type Error struct {
	AudioPath string
	Reason    string
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transcribe %q: %s: %v", e.AudioPath, e.Reason, e.Err)
	}
	return fmt.Sprintf("transcribe %q: %s", e.AudioPath, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }
