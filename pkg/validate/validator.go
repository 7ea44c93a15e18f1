package validate

import (
	"context"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// Options configures a Validator
type Options struct {
	// Dir is the dotfiles checkout
	Dir string
	// Configs are dotter config files under .dotter/; the first one is required
	Configs []string
	// JSONC lists path fragments of JSON files that allow comments
	JSONC []string
}

// Validator runs the rules against one checkout
type Validator struct {
	opts      Options
	fs        types.FS
	commander types.Commander
}

// New creates a validator. Git is queried through commander.
func New(opts Options, fs types.FS, commander types.Commander) *Validator {
	return &Validator{opts: opts, fs: fs, commander: commander}
}

// Run evaluates every rule in order. An error means a rule could not run at
// all; problems in the checkout are reported as issues.
func (v *Validator) Run(ctx context.Context) ([]Result, error) {
	logger := logging.GetLogger("validate")

	if _, err := v.fs.Stat(v.opts.Dir); err != nil {
		return nil, errors.Wrapf(err, errors.ErrValidation, "dotfiles directory not found: %s", v.opts.Dir)
	}

	c := &checkout{
		dir:     v.opts.Dir,
		fs:      v.fs,
		git:     &git{dir: v.opts.Dir, commander: v.commander},
		configs: v.opts.Configs,
		jsonc:   v.opts.JSONC,
		logger:  logger,
	}

	results := make([]Result, 0, len(rules))
	for _, r := range rules {
		res, err := r(ctx, c)
		if err != nil {
			return results, err
		}
		logger.Debug().
			Str("rule", res.Rule).
			Bool("passed", res.Passed).
			Int("issues", len(res.Issues)).
			Msg("Rule evaluated")
		results = append(results, res)
	}
	return results, nil
}
