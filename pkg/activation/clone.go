package activation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/types"
)

// CloneRepo clones a git repository when its path does not exist. An
// existing path, whatever it holds, is left alone.
type CloneRepo struct {
	URL    string
	Path   string
	Branch string
}

func (s *CloneRepo) Name() string {
	return "dotfiles repository"
}

func (s *CloneRepo) Check(_ context.Context, env *Env) (bool, error) {
	if s.URL == "" || s.Path == "" {
		return false, errors.New(errors.ErrInvalidInput, "clone requires a url and a path")
	}
	_, err := env.FS.Lstat(s.Path)
	if err == nil {
		return false, nil
	}
	if os.IsNotExist(err) {
		return true, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", s.Path)
}

func (s *CloneRepo) Apply(ctx context.Context, env *Env) error {
	if err := env.FS.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent of %s", s.Path)
	}

	args := []string{"clone"}
	if s.Branch != "" {
		args = append(args, "--branch", s.Branch)
	}
	args = append(args, s.URL, s.Path)

	code, err := env.Commander.Run(ctx, types.Command{Name: "git", Args: args})
	if err != nil {
		return errors.Wrap(err, errors.ErrClone, "failed to run git")
	}
	if code != 0 {
		return errors.Newf(errors.ErrClone, "git clone exited with status %d", code).
			WithDetail("url", s.URL).
			WithDetail("path", s.Path).
			WithDetail("exitCode", code)
	}

	env.FS.Record(filesystem.Change{Op: filesystem.OpClone, Path: s.Path, Target: s.URL})
	return nil
}
