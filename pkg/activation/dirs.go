package activation

import (
	"context"
	"io/fs"
	"os"

	"github.com/arthur-debert/dotctl/pkg/errors"
)

// EnsureDirs creates directories that do not exist yet
type EnsureDirs struct {
	Label string
	Paths []string
	Mode  fs.FileMode
}

func (s *EnsureDirs) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "directories"
}

func (s *EnsureDirs) Check(_ context.Context, env *Env) (bool, error) {
	missing, err := s.missing(env)
	return len(missing) > 0, err
}

func (s *EnsureDirs) Apply(_ context.Context, env *Env) error {
	missing, err := s.missing(env)
	if err != nil {
		return err
	}
	mode := s.Mode
	if mode == 0 {
		mode = 0755
	}
	for _, path := range missing {
		if err := env.FS.MkdirAll(path, mode); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", path).
				WithDetail("path", path)
		}
	}
	return nil
}

func (s *EnsureDirs) missing(env *Env) ([]string, error) {
	var missing []string
	for _, path := range s.Paths {
		info, err := env.FS.Stat(path)
		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return nil, errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", path).
				WithDetail("path", path)
		case os.IsNotExist(err):
			missing = append(missing, path)
		default:
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
		}
	}
	return missing, nil
}
