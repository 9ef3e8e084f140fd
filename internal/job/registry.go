// Package job holds the per-chat OCR job orchestration: a registry
// enforcing at most one live job per chat, cooperative cancellation, and
// the archive/image state machines.
package job

import (
	"sync"
	"sync/atomic"

	"github.com/kavyabhat/scanlate/internal/domain"
)

// Job is one in-flight OCR task bound to a chat. Its cancel flag is a
// shared token: commands set it, the running task polls it at page
// boundaries only, never mid-I/O.
type Job struct {
	ChatID int64
	Kind   domain.JobKind

	cancelled atomic.Bool
}

func (j *Job) Cancel() {
	j.cancelled.Store(true)
}

func (j *Job) Cancelled() bool {
	return j.cancelled.Load()
}

// Registry tracks the single active job per chat. Starting a second job
// while one is live is rejected outright; the caller must /cancel first.
// This keeps every running task reachable by its cancel flag; an entry
// can never be silently overwritten and orphaned.
type Registry struct {
	mu   sync.Mutex
	jobs map[int64]*Job
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[int64]*Job)}
}

// Begin registers a new job for the chat, or ErrJobActive if one is live.
func (r *Registry) Begin(chatID int64, kind domain.JobKind) (*Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, live := r.jobs[chatID]; live {
		return nil, domain.ErrJobActive
	}
	j := &Job{ChatID: chatID, Kind: kind}
	r.jobs[chatID] = j
	return j, nil
}

// Cancel flags the chat's live job for cooperative shutdown. Returns
// false when there is nothing to cancel.
func (r *Registry) Cancel(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[chatID]
	if !ok {
		return false
	}
	j.Cancel()
	return true
}

// Active reports whether the chat has a live job.
func (r *Registry) Active(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.jobs[chatID]
	return ok
}

// Finish removes the chat's entry if it still belongs to j. Idempotent;
// safe to call from any exit path.
func (r *Registry) Finish(j *Job) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.jobs[j.ChatID]; ok && current == j {
		delete(r.jobs, j.ChatID)
	}
}
