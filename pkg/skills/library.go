package skills

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
)

// SkillFile is the document name inside a skill directory
const SkillFile = "SKILL.md"

// Library is a set of skills keyed by name
type Library struct {
	dir    string
	skills map[string]Skill
}

// Load discovers skills in dir. A missing directory is an empty library.
// When two documents claim the same name the first in directory order wins.
func Load(dir string) (*Library, error) {
	logger := logging.GetLogger("skills")
	lib := &Library{dir: dir, skills: make(map[string]Skill)}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("dir", dir).Msg("No skills directory")
			return lib, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read skills directory %s", dir)
	}

	for _, entry := range entries {
		var path, fallback string
		switch {
		case entry.IsDir():
			path = filepath.Join(dir, entry.Name(), SkillFile)
			fallback = entry.Name()
			if _, err := os.Stat(path); err != nil {
				continue
			}
		case strings.EqualFold(filepath.Ext(entry.Name()), ".md") && !strings.EqualFold(entry.Name(), "README.md"):
			path = filepath.Join(dir, entry.Name())
			fallback = strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		default:
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read skill %s", path)
		}
		skill, err := Parse(data, fallback)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSkillInvalid, "failed to load skill %s", path).
				WithDetail("path", path)
		}
		skill.Path = path

		if existing, ok := lib.skills[skill.Name]; ok {
			logger.Warn().
				Str("skill", skill.Name).
				Str("kept", existing.Path).
				Str("ignored", path).
				Msg("Duplicate skill name")
			continue
		}
		lib.skills[skill.Name] = skill
	}

	logger.Debug().Str("dir", dir).Int("skills", len(lib.skills)).Msg("Loaded skills")
	return lib, nil
}

// Dir returns the directory the library was loaded from
func (l *Library) Dir() string {
	return l.dir
}

// Get returns a skill by name
func (l *Library) Get(name string) (Skill, error) {
	s, ok := l.skills[name]
	if !ok {
		return Skill{}, errors.Newf(errors.ErrNotFound, "no such skill: %s", name)
	}
	return s, nil
}

// List returns all skills sorted by name
func (l *Library) List() []Skill {
	out := make([]Skill, 0, len(l.skills))
	for _, s := range l.skills {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
