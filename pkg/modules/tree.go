package modules

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Tree is the result of overlaying fragments
type Tree struct {
	k          *koanf.Koanf
	fragments  []string
	provenance map[string][]string
}

// Aggregate overlays fragments in order. Later fragments win per leaf key.
// Dotted keys inside a fragment are expanded into nested tables.
func Aggregate(fragments ...Fragment) (*Tree, error) {
	logger := logging.GetLogger("modules")

	t := &Tree{
		k:          koanf.New("."),
		provenance: make(map[string][]string),
	}

	seen := make(map[string]bool)
	for _, frag := range fragments {
		if frag.Name == "" {
			return nil, errors.New(errors.ErrFragmentInvalid, "fragment without a name")
		}
		if seen[frag.Name] {
			return nil, errors.Newf(errors.ErrFragmentInvalid, "fragment %q given twice", frag.Name)
		}
		seen[frag.Name] = true

		fk := koanf.New(".")
		if err := fk.Load(confmap.Provider(frag.Settings, "."), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFragmentInvalid, "failed to load fragment %s", frag.Name)
		}

		overridden := 0
		for _, key := range fk.Keys() {
			if len(t.provenance[key]) > 0 {
				overridden++
			}
			if t.reshape(key) {
				overridden++
			}
			t.provenance[key] = append(t.provenance[key], frag.Name)
		}

		if err := t.k.Merge(fk); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFragmentInvalid, "failed to merge fragment %s", frag.Name)
		}
		t.fragments = append(t.fragments, frag.Name)

		logger.Debug().
			Str("fragment", frag.Name).
			Int("keys", len(fk.Keys())).
			Int("overridden", overridden).
			Msg("Overlaid fragment")
	}

	return t, nil
}

// reshape drops the history of keys that a write to key replaces with a
// value of another shape: a scalar on one of its parent tables, or tables
// below it. It reports whether anything was dropped.
func (t *Tree) reshape(key string) bool {
	dropped := false
	for i := 0; i < len(key); i++ {
		if key[i] != '.' {
			continue
		}
		if _, ok := t.provenance[key[:i]]; ok {
			delete(t.provenance, key[:i])
			dropped = true
		}
	}
	prefix := key + "."
	for existing := range t.provenance {
		if strings.HasPrefix(existing, prefix) {
			delete(t.provenance, existing)
			dropped = true
		}
	}
	return dropped
}

// Fragments returns the names of the aggregated fragments in overlay order
func (t *Tree) Fragments() []string {
	return append([]string(nil), t.fragments...)
}

// Exists reports whether key is set, as a leaf or a table
func (t *Tree) Exists(key string) bool {
	return t.k.Exists(key)
}

// Get returns the value at key, or nil
func (t *Tree) Get(key string) interface{} {
	return t.k.Get(key)
}

// String returns the value at key as a string
func (t *Tree) String(key string) string {
	return t.k.String(key)
}

// Keys returns all leaf keys, sorted
func (t *Tree) Keys() []string {
	return t.k.Keys()
}

// All returns the flattened key/value map
func (t *Tree) All() map[string]interface{} {
	return t.k.All()
}

// Raw returns the nested tree
func (t *Tree) Raw() map[string]interface{} {
	return t.k.Raw()
}

// Provenance returns the fragments that wrote key, in overlay order. The
// last entry owns the current value. A write that changes the shape of a
// key, scalar to table or back, starts its history afresh.
func (t *Tree) Provenance(key string) []string {
	if !t.k.Exists(key) {
		return nil
	}
	if writers, ok := t.provenance[key]; ok {
		return append([]string(nil), writers...)
	}

	// a table: every fragment that wrote a leaf below it
	prefix := key + "."
	seen := make(map[string]bool)
	var writers []string
	for _, leaf := range t.k.Keys() {
		if len(leaf) <= len(prefix) || !strings.HasPrefix(leaf, prefix) {
			continue
		}
		for _, name := range t.provenance[leaf] {
			if !seen[name] {
				seen[name] = true
				writers = append(writers, name)
			}
		}
	}
	sort.SliceStable(writers, func(i, j int) bool {
		return t.position(writers[i]) < t.position(writers[j])
	})
	return writers
}

// Owner returns the fragment whose value is in effect at key. For a table
// it is the last fragment that wrote a leaf below it.
func (t *Tree) Owner(key string) string {
	writers := t.Provenance(key)
	if len(writers) == 0 {
		return ""
	}
	return writers[len(writers)-1]
}

func (t *Tree) position(name string) int {
	for i, n := range t.fragments {
		if n == name {
			return i
		}
	}
	return len(t.fragments)
}

// Cut returns the sub-tree at key
func (t *Tree) Cut(key string) (*Tree, error) {
	if !t.k.Exists(key) {
		return nil, errors.Newf(errors.ErrNotFound, "no such key: %s", key)
	}
	if _, ok := t.k.Get(key).(map[string]interface{}); !ok {
		return nil, errors.Newf(errors.ErrInvalidInput, "key %s is not a table", key)
	}

	sub := &Tree{
		k:          t.k.Cut(key),
		fragments:  t.Fragments(),
		provenance: make(map[string][]string),
	}
	prefix := key + "."
	for leaf, writers := range t.provenance {
		if len(leaf) > len(prefix) && leaf[:len(prefix)] == prefix {
			sub.provenance[leaf[len(prefix):]] = append([]string(nil), writers...)
		}
	}
	return sub, nil
}

// Marshal renders the tree as toml, yaml or json
func (t *Tree) Marshal(format string) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch format {
	case "", "toml":
		out, err = t.k.Marshal(toml.Parser())
	case "yaml", "yml":
		out, err = t.k.Marshal(yaml.Parser())
	case "json":
		out, err = json.MarshalIndent(t.k.Raw(), "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case "plist":
		return t.Plist("")
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported format: %s", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRender, "failed to render %s", format)
	}
	return out, nil
}
