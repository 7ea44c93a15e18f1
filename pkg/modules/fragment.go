package modules

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Fragment is a named configuration unit
type Fragment struct {
	Name     string
	Path     string
	Settings map[string]interface{}
}

// fragment file extensions, in lookup order
var extensions = []string{".toml", ".yaml", ".yml"}

// LoadFragment reads a single fragment file. The fragment is named after the
// file without its extension.
func LoadFragment(path string) (Fragment, error) {
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return Fragment{}, errors.Newf(errors.ErrFragmentLoad, "unsupported fragment format: %s", path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return Fragment{}, errors.Wrapf(err, errors.ErrFragmentInvalid, "failed to parse fragment %s", path).
			WithDetail("path", path)
	}

	return Fragment{
		Name:     strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path:     path,
		Settings: k.Raw(),
	}, nil
}

// LoadFragments reads the fragments named in order from dir. With an empty
// order every fragment file in dir is loaded alphabetically.
func LoadFragments(dir string, order []string) ([]Fragment, error) {
	logger := logging.GetLogger("modules")

	if len(order) == 0 {
		names, err := discover(dir)
		if err != nil {
			return nil, err
		}
		order = names
	}

	fragments := make([]Fragment, 0, len(order))
	for _, name := range order {
		path, ok := locate(dir, name)
		if !ok {
			return nil, errors.Newf(errors.ErrNotFound, "module fragment %q not found in %s", name, dir).
				WithDetail("fragment", name).
				WithDetail("dir", dir)
		}
		frag, err := LoadFragment(path)
		if err != nil {
			return nil, err
		}
		frag.Name = name
		logger.Debug().Str("fragment", name).Str("path", path).Msg("Loaded module fragment")
		fragments = append(fragments, frag)
	}
	return fragments, nil
}

func locate(dir, name string) (string, bool) {
	for _, ext := range extensions {
		path := filepath.Join(dir, name+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFragmentLoad, "failed to read module directory %s", dir)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".toml" && ext != ".yaml" && ext != ".yml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
