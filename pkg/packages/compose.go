package packages

import (
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
)

// Platform selects the platform-specific catalog list
type Platform string

const (
	Darwin Platform = "darwin"
	Linux  Platform = "linux"
)

// Target is where a composed list is installed
type Target string

const (
	// TargetSystem is the system-wide package list
	TargetSystem Target = "system"
	// TargetUser is the per-user (home-manager) package list
	TargetUser Target = "user"
)

// PlatformFromGOOS maps a GOOS value to a Platform
func PlatformFromGOOS(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return Darwin, nil
	case "linux":
		return Linux, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported platform: %s", goos)
	}
}

// Catalog is the base package catalog
type Catalog struct {
	Common  []string
	Darwin  []string
	Linux   []string
	Home    []string
	Exclude []string
}

// Source is an externally supplied set of packages. Its package entries are
// attribute paths relative to the source.
type Source struct {
	Name     string
	Target   Target
	Packages []string
}

// Composition is the result of composing a catalog
type Composition struct {
	Platform Platform `json:"platform" yaml:"platform" toml:"platform"`
	System   []Ref    `json:"system" yaml:"system" toml:"system"`
	User     []Ref    `json:"user" yaml:"user" toml:"user"`
}

// For returns the list for a target
func (c Composition) For(target Target) []Ref {
	if target == TargetUser {
		return c.User
	}
	return c.System
}

// Compose merges the catalog and sources into one list per target.
// It is a pure function of its inputs.
func Compose(catalog Catalog, sources []Source, platform Platform) (Composition, error) {
	logger := logging.GetLogger("packages")

	var platformList []string
	switch platform {
	case Darwin:
		platformList = catalog.Darwin
	case Linux:
		platformList = catalog.Linux
	default:
		return Composition{}, errors.Newf(errors.ErrInvalidInput, "unsupported platform: %s", platform)
	}

	excluded := make(map[string]bool, len(catalog.Exclude))
	for _, s := range catalog.Exclude {
		ref, err := ParseRef(s)
		if err != nil {
			return Composition{}, errors.Wrap(err, errors.ErrPackageRef, "invalid exclude entry")
		}
		excluded[ref.String()] = true
	}

	system := newList(excluded)
	user := newList(excluded)

	for _, group := range [][]string{catalog.Common, platformList} {
		if err := system.addAll("", group); err != nil {
			return Composition{}, err
		}
	}
	if err := user.addAll("", catalog.Home); err != nil {
		return Composition{}, err
	}

	for _, source := range sources {
		if source.Name == "" {
			return Composition{}, errors.New(errors.ErrPackageRef, "source without a name")
		}
		var list *refList
		switch source.Target {
		case TargetSystem, "":
			list = system
		case TargetUser:
			list = user
		default:
			return Composition{}, errors.Newf(errors.ErrPackageTarget,
				"source %q has unknown target %q", source.Name, source.Target)
		}
		if err := list.addAll(source.Name, source.Packages); err != nil {
			return Composition{}, err
		}
	}

	logger.Debug().
		Str("platform", string(platform)).
		Int("system", len(system.refs)).
		Int("user", len(user.refs)).
		Int("duplicates", system.dropped+user.dropped).
		Msg("Composed package lists")

	return Composition{Platform: platform, System: system.refs, User: user.refs}, nil
}

// refList is an insertion-ordered set of refs
type refList struct {
	refs     []Ref
	seen     map[string]bool
	excluded map[string]bool
	dropped  int
}

func newList(excluded map[string]bool) *refList {
	return &refList{seen: make(map[string]bool), excluded: excluded}
}

func (l *refList) addAll(source string, entries []string) error {
	for _, entry := range entries {
		ref, err := ParseRef(entry)
		if err != nil {
			return err
		}
		if source != "" {
			if ref.Source != "" && ref.Source != source {
				return errors.Newf(errors.ErrPackageRef,
					"reference %q names source %q inside source %q", entry, ref.Source, source)
			}
			ref.Source = source
		}
		key := ref.String()
		if l.excluded[key] {
			continue
		}
		if l.seen[key] {
			l.dropped++
			continue
		}
		l.seen[key] = true
		l.refs = append(l.refs, ref)
	}
	return nil
}
