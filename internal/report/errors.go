package report

import "fmt"

// Error reports a failed report build or export.
type Error struct {
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("report %q: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("report %q: %s", e.Path, e.Reason)
}

func (e *Error) Unwrap() error { return e.Err }
