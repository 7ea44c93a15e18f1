package activation

import (
	"context"
	"os"
	"os/user"
	"strconv"
	"syscall"

	"github.com/arthur-debert/dotctl/pkg/errors"
)

// Chown hands paths to a uid/gid. Paths that do not exist are skipped.
type Chown struct {
	Paths []string
	UID   int
	GID   int
	Label string
}

// ChownToUser resolves username to its uid and primary gid
func ChownToUser(username string, paths []string) (*Chown, error) {
	u, err := user.Lookup(username)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrChown, "unknown user %s", username)
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrChown, "non-numeric uid for %s", username)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrChown, "non-numeric gid for %s", username)
	}
	return &Chown{Paths: paths, UID: uid, GID: gid, Label: "ownership for " + username}, nil
}

func (s *Chown) Name() string {
	if s.Label != "" {
		return s.Label
	}
	return "ownership"
}

func (s *Chown) Check(_ context.Context, env *Env) (bool, error) {
	wrong, err := s.mismatched(env)
	return len(wrong) > 0, err
}

func (s *Chown) Apply(_ context.Context, env *Env) error {
	wrong, err := s.mismatched(env)
	if err != nil {
		return err
	}
	for _, path := range wrong {
		if err := env.FS.Lchown(path, s.UID, s.GID); err != nil {
			return errors.Wrapf(err, errors.ErrChown, "failed to chown %s", path).
				WithDetail("uid", s.UID).
				WithDetail("gid", s.GID)
		}
	}
	return nil
}

func (s *Chown) mismatched(env *Env) ([]string, error) {
	var wrong []string
	for _, path := range s.Paths {
		info, err := env.FS.Lstat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
		}
		st, ok := info.Sys().(*syscall.Stat_t)
		if !ok {
			return nil, errors.Newf(errors.ErrChown, "no ownership information for %s", path)
		}
		if int(st.Uid) != s.UID || int(st.Gid) != s.GID {
			wrong = append(wrong, path)
		}
	}
	return wrong, nil
}
