package activation

import (
	"context"

	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// Step is one idempotent activation operation
type Step interface {
	// Name is shown as "Setting up <name>..."
	Name() string
	// Check reports whether Apply has any work to do. It must not mutate.
	Check(ctx context.Context, env *Env) (bool, error)
	// Apply performs the work. It is only called after Check returned true.
	Apply(ctx context.Context, env *Env) error
}

// Env carries what steps need to act on the system
type Env struct {
	FS        *filesystem.Recorder
	Commander types.Commander
}

// NewEnv wraps fs in a change recorder
func NewEnv(fs types.FS, commander types.Commander) *Env {
	return &Env{
		FS:        filesystem.NewRecorder(fs),
		Commander: commander,
	}
}

// Status is the outcome of a single step
type Status string

const (
	// StatusUpToDate means Check found nothing to do
	StatusUpToDate Status = "up-to-date"
	// StatusApplied means Apply ran successfully
	StatusApplied Status = "applied"
	// StatusPending means work is needed but the run was a dry run
	StatusPending Status = "pending"
	// StatusFailed means Check or Apply returned an error
	StatusFailed Status = "failed"
	// StatusNotRun means an earlier step failed
	StatusNotRun Status = "not-run"
)

// StepResult records what happened to one step
type StepResult struct {
	Name    string
	Status  Status
	Changes []filesystem.Change
	Err     error
}

// Report is the outcome of a run
type Report struct {
	DryRun bool
	Steps  []StepResult
}

// Mutations returns the number of filesystem changes across all steps
func (r *Report) Mutations() int {
	n := 0
	for _, s := range r.Steps {
		n += len(s.Changes)
	}
	return n
}

// Changes returns every change in step order
func (r *Report) Changes() []filesystem.Change {
	var out []filesystem.Change
	for _, s := range r.Steps {
		out = append(out, s.Changes...)
	}
	return out
}

// Failed returns the failed step, or nil
func (r *Report) Failed() *StepResult {
	for i := range r.Steps {
		if r.Steps[i].Status == StatusFailed {
			return &r.Steps[i]
		}
	}
	return nil
}

// Count returns how many steps ended with status
func (r *Report) Count(status Status) int {
	n := 0
	for _, s := range r.Steps {
		if s.Status == status {
			n++
		}
	}
	return n
}
