package recipes

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/paths"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/rs/zerolog"
)

// DefaultShell runs recipe lines
const DefaultShell = "sh"

// Options configures a Dispatcher
type Options struct {
	DotfilesDir string
	ConfigDir   string
	Shell       string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Dispatcher runs recipes through a Commander
type Dispatcher struct {
	book      *Book
	commander types.Commander
	opts      Options
	logger    zerolog.Logger
}

// NewDispatcher creates a dispatcher for book
func NewDispatcher(book *Book, commander types.Commander, opts Options) *Dispatcher {
	if opts.Shell == "" {
		opts.Shell = DefaultShell
	}
	return &Dispatcher{
		book:      book,
		commander: commander,
		opts:      opts,
		logger:    logging.GetLogger("recipes"),
	}
}

// Book returns the recipes the dispatcher knows
func (d *Dispatcher) Book() *Book {
	return d.book
}

// Run executes the named recipe with args. Lines run in order and the first
// non-zero exit stops the recipe; that exit code is returned unchanged with a
// nil error. An error is only returned when the recipe is unknown or a line
// could not be started, and the exit code is then non-zero as well.
func (d *Dispatcher) Run(ctx context.Context, name string, args []string) (int, error) {
	recipe, ok := d.book.Lookup(name)
	if !ok {
		return 1, errors.Newf(errors.ErrRecipeNotFound, "no such recipe: %s", name).
			WithDetail("recipe", name)
	}

	logger := d.logger.With().Str("recipe", recipe.Name).Logger()
	if recipe.Name != name {
		logger.Debug().Str("alias", name).Msg("Resolved recipe alias")
	}

	dir := d.dir(recipe)
	env := d.env(recipe)

	for i, line := range recipe.Run {
		cmd := types.Command{
			Name:   d.opts.Shell,
			Args:   append([]string{"-c", line, recipe.Name}, args...),
			Dir:    dir,
			Env:    env,
			Stdin:  d.opts.Stdin,
			Stdout: d.opts.Stdout,
			Stderr: d.opts.Stderr,
		}
		logger.Debug().Int("line", i+1).Str("run", line).Str("dir", dir).Msg("Running recipe line")

		code, err := d.commander.Run(ctx, cmd)
		if err != nil {
			if code == 0 {
				code = 1
			}
			return code, err
		}
		if code != 0 {
			logger.Debug().Int("line", i+1).Int("exitCode", code).Msg("Recipe line failed")
			return code, nil
		}
	}
	return 0, nil
}

// dir resolves the working directory of a recipe
func (d *Dispatcher) dir(r Recipe) string {
	switch r.Dir {
	case "", DirDotfiles:
		return d.opts.DotfilesDir
	case DirConfig:
		return d.opts.ConfigDir
	case DirCurrent:
		return ""
	}
	if filepath.IsAbs(r.Dir) {
		return r.Dir
	}
	return filepath.Join(d.opts.DotfilesDir, r.Dir)
}

// env exports the two location variables plus the recipe's own
func (d *Dispatcher) env(r Recipe) []string {
	env := []string{
		fmt.Sprintf("%s=%s", paths.EnvDotfilesDir, d.opts.DotfilesDir),
		fmt.Sprintf("%s=%s", paths.EnvConfigDir, d.opts.ConfigDir),
	}
	keys := make([]string, 0, len(r.Env))
	for k := range r.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, fmt.Sprintf("%s=%s", k, r.Env[k]))
	}
	return env
}
