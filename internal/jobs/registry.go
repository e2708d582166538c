package jobs

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type implRegistry struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewRegistry creates an empty in-memory registry.
func NewRegistry() Registry {
	return &implRegistry{jobs: make(map[string]*Job)}
}

func (r *implRegistry) Create() Job {
	now := time.Now()
	job := &Job{
		ID:        uuid.NewString(),
		Status:    StatusQueued,
		Message:   "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()
	return *job
}

func (r *implRegistry) CreateOrUpdate(id string, status Status, progress int, message string, result any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		now := time.Now()
		job = &Job{ID: id, CreatedAt: now}
		r.jobs[id] = job
	}
	if job.Status.Terminal() {
		return
	}

	job.Status = status
	job.Message = message
	if progress > job.Progress {
		job.Progress = progress
	}
	if result != nil {
		job.Result = result
	}
	job.UpdatedAt = time.Now()
}

func (r *implRegistry) Fail(id, errMsg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok || job.Status.Terminal() {
		return
	}
	job.Status = StatusFailed
	job.Error = errMsg
	job.Message = errMsg
	job.UpdatedAt = time.Now()
}

func (r *implRegistry) Get(id string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

func (r *implRegistry) RequestCancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok || job.Status.Terminal() {
		return false
	}
	job.CancelRequested = true
	job.UpdatedAt = time.Now()
	return true
}

func (r *implRegistry) CancelRequested(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	return ok && job.CancelRequested
}

func (r *implRegistry) List() []Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, *job)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
