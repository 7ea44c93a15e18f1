package activation

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/rs/zerolog"
)

// Options configures a Runner
type Options struct {
	// DryRun evaluates Check only
	DryRun bool
	// Out receives the "Setting up <name>..." progress lines. Nil discards them.
	Out io.Writer
}

// Runner executes steps in order, once each
type Runner struct {
	env    *Env
	opts   Options
	logger zerolog.Logger
}

// NewRunner creates a runner acting through env
func NewRunner(env *Env, opts Options) *Runner {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return &Runner{
		env:    env,
		opts:   opts,
		logger: logging.GetLogger("activation"),
	}
}

// Run executes steps in declaration order and stops at the first failure.
// The report is returned in every case, including on error, and lists the
// steps that were not reached as not-run.
func (r *Runner) Run(ctx context.Context, steps []Step) (*Report, error) {
	report := &Report{DryRun: r.opts.DryRun}
	start := time.Now()
	defer logging.LogDuration(start, "activation")

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			markNotRun(report, steps[i:])
			return report, errors.Wrap(err, errors.ErrStepApply, "activation cancelled")
		}

		result, err := r.runStep(ctx, step)
		report.Steps = append(report.Steps, result)
		if err != nil {
			markNotRun(report, steps[i+1:])
			r.logger.Error().
				Err(err).
				Str("step", step.Name()).
				Int("remaining", len(steps)-i-1).
				Msg("Activation step failed, aborting")
			return report, err
		}
	}

	r.logger.Info().
		Int("steps", len(steps)).
		Int("applied", report.Count(StatusApplied)).
		Int("pending", report.Count(StatusPending)).
		Int("mutations", report.Mutations()).
		Bool("dryRun", r.opts.DryRun).
		Msg("Activation complete")
	return report, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) (StepResult, error) {
	name := step.Name()
	result := StepResult{Name: name}
	logger := r.logger.With().Str("step", name).Logger()

	_, _ = fmt.Fprintf(r.opts.Out, "Setting up %s...\n", name)

	// anything recorded outside a step does not belong to it
	r.env.FS.Drain()

	needed, err := step.Check(ctx, r.env)
	if err != nil {
		result.Status = StatusFailed
		result.Err = errors.Wrapf(err, errors.ErrStepCheck, "step %s: check failed", name).
			WithDetail("step", name)
		return result, result.Err
	}
	if !needed {
		logger.Debug().Msg("Step is up to date")
		result.Status = StatusUpToDate
		return result, nil
	}
	if r.opts.DryRun {
		logger.Info().Msg("Step would apply changes (dry run)")
		result.Status = StatusPending
		return result, nil
	}

	err = step.Apply(ctx, r.env)
	result.Changes = r.env.FS.Drain()
	for _, c := range result.Changes {
		logger.Debug().Str("change", c.String()).Msg("Filesystem changed")
	}
	if err != nil {
		result.Status = StatusFailed
		result.Err = errors.Wrapf(err, errors.ErrStepApply, "step %s: apply failed", name).
			WithDetail("step", name).
			WithDetail("changes", len(result.Changes))
		return result, result.Err
	}

	logger.Info().Int("changes", len(result.Changes)).Msg("Step applied")
	result.Status = StatusApplied
	return result, nil
}

func markNotRun(report *Report, steps []Step) {
	for _, s := range steps {
		report.Steps = append(report.Steps, StepResult{Name: s.Name(), Status: StatusNotRun})
	}
}
