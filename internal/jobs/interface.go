package jobs

import "time"

// Status is a job's lifecycle state. Terminal states never transition
// further.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
)

// Terminal reports whether the status admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// Job is one tracked pipeline invocation. Snapshots returned by the
// registry are copies; mutating them does not affect the stored record.
type Job struct {
	ID              string    `json:"id"`
	Status          Status    `json:"status"`
	Progress        int       `json:"progress"`
	Message         string    `json:"message"`
	Result          any       `json:"result,omitempty"`
	Error           string    `json:"error,omitempty"`
	CancelRequested bool      `json:"cancel_requested,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Registry tracks job status snapshots for the process lifetime. One
// orchestrator run owns one job id; readers may poll concurrently and
// never observe a partially updated record.
type Registry interface {
	// Create registers a new queued job and returns it.
	Create() Job

	// CreateOrUpdate writes a job's latest snapshot. Updates against a
	// terminal record are ignored.
	CreateOrUpdate(id string, status Status, progress int, message string, result any)

	// Fail moves a job to failed with an error message.
	Fail(id, errMsg string)

	// Get returns the latest snapshot, or false when the id is unknown.
	Get(id string) (Job, bool)

	// RequestCancel flags a job for cooperative cancellation. It reports
	// false for unknown or already-terminal jobs.
	RequestCancel(id string) bool

	// CancelRequested reports whether cancellation was requested.
	CancelRequested(id string) bool

	// List returns snapshots of all known jobs, newest first.
	List() []Job
}
