package activation

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
)

// LinkPlugins links every executable in Source into Target. Symlinks in
// Target that resolve under Store but are not wanted any more are removed
// first, including links that reach the store through other symlinks.
// Symlinks resolving elsewhere and regular files are never touched, even
// when they occupy the name of a plugin.
type LinkPlugins struct {
	Store  string
	Source string
	Target string
}

func (s *LinkPlugins) Name() string {
	return "plugin links"
}

type linkPlan struct {
	stale   []string
	missing map[string]string
}

func (p linkPlan) empty() bool {
	return len(p.stale) == 0 && len(p.missing) == 0
}

func (s *LinkPlugins) Check(_ context.Context, env *Env) (bool, error) {
	plan, err := s.plan(env)
	if err != nil {
		return false, err
	}
	return !plan.empty(), nil
}

func (s *LinkPlugins) Apply(_ context.Context, env *Env) error {
	plan, err := s.plan(env)
	if err != nil {
		return err
	}

	for _, link := range plan.stale {
		if err := env.FS.Remove(link); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove stale link %s", link)
		}
	}

	if len(plan.missing) > 0 {
		if err := env.FS.MkdirAll(s.Target, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", s.Target)
		}
	}

	names := make([]string, 0, len(plan.missing))
	for name := range plan.missing {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		link := filepath.Join(s.Target, name)
		if err := env.FS.Symlink(plan.missing[name], link); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s", link).
				WithDetail("target", plan.missing[name])
		}
	}
	return nil
}

// plan compares the wanted links with what is in Target
func (s *LinkPlugins) plan(env *Env) (linkPlan, error) {
	logger := logging.GetLogger("activation.plugins")

	if s.Store == "" || s.Source == "" || s.Target == "" {
		return linkPlan{}, errors.New(errors.ErrInvalidInput, "plugin links require store, source and target")
	}
	if !isUnder(s.Source, s.Store) {
		return linkPlan{}, errors.Newf(errors.ErrInvalidInput,
			"plugin source %s is outside the store %s", s.Source, s.Store)
	}

	wanted, err := s.executables(env)
	if err != nil {
		return linkPlan{}, err
	}

	plan := linkPlan{missing: make(map[string]string)}
	for name, target := range wanted {
		plan.missing[name] = target
	}

	entries, err := env.FS.ReadDir(s.Target)
	if err != nil && !os.IsNotExist(err) {
		return linkPlan{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", s.Target)
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(s.Target, name)

		info, err := env.FS.Lstat(path)
		if err != nil {
			return linkPlan{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			if _, ok := wanted[name]; ok {
				logger.Warn().Str("path", path).Msg("Plugin name taken by a regular file, leaving it alone")
				delete(plan.missing, name)
			}
			continue
		}

		dest, inStore, err := s.follow(env, path)
		if err != nil {
			return linkPlan{}, err
		}

		if !inStore {
			if _, ok := wanted[name]; ok {
				logger.Warn().Str("path", path).Str("target", dest).
					Msg("Plugin name taken by a link outside the store, leaving it alone")
				delete(plan.missing, name)
			}
			continue
		}

		if want, ok := wanted[name]; ok && want == dest {
			delete(plan.missing, name)
			continue
		}
		plan.stale = append(plan.stale, path)
	}

	sort.Strings(plan.stale)
	logger.Debug().
		Int("wanted", len(wanted)).
		Int("missing", len(plan.missing)).
		Int("stale", len(plan.stale)).
		Msg("Planned plugin links")
	return plan, nil
}

// maxHops bounds link chains, matching the kernel's ELOOP limit
const maxHops = 40

// follow walks the link chain starting at path one hop at a time and
// stops at the first hop under Store. It reports the last hop reached and
// whether it is in the store. Only the final path component is followed,
// so a symlinked parent directory of a hop is compared lexically.
func (s *LinkPlugins) follow(env *Env, path string) (string, bool, error) {
	hop := path
	for i := 0; i < maxHops; i++ {
		dest, err := env.FS.Readlink(hop)
		if err != nil {
			if i == 0 {
				return "", false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", hop)
			}
			return hop, false, nil
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(hop), dest)
		}
		hop = filepath.Clean(dest)
		if isUnder(hop, s.Store) {
			return hop, true, nil
		}

		info, err := env.FS.Lstat(hop)
		if err != nil || info.Mode()&os.ModeSymlink == 0 {
			return hop, false, nil
		}
	}
	return hop, false, nil
}

// executables lists files in Source with any execute bit set
func (s *LinkPlugins) executables(env *Env) (map[string]string, error) {
	entries, err := env.FS.ReadDir(s.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read plugin source %s", s.Source).
			WithDetail("path", s.Source)
	}

	wanted := make(map[string]string)
	for _, entry := range entries {
		path := filepath.Join(s.Source, entry.Name())
		// store entries are often symlinks themselves
		info, err := env.FS.Stat(path)
		if err != nil || info.IsDir() || info.Mode().Perm()&0111 == 0 {
			continue
		}
		wanted[entry.Name()] = filepath.Clean(path)
	}
	return wanted, nil
}

// isUnder reports whether path is root or lies below it, lexically
func isUnder(path, root string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
