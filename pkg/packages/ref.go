package packages

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
)

// Ref is a package reference: an attribute path, optionally inside an
// external source. The canonical text form is the identity used for
// deduplication.
//
//	ripgrep                  Ref{Name: "ripgrep"}
//	nodePackages.prettier    Ref{Name: "nodePackages", AttrPath: ["prettier"]}
//	helix#packages.default   Ref{Source: "helix", Name: "packages", AttrPath: ["default"]}
type Ref struct {
	Source   string
	Name     string
	AttrPath []string
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_+'-]*$`)

// ParseRef parses the text form of a reference
func ParseRef(s string) (Ref, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return Ref{}, errors.New(errors.ErrPackageRef, "empty package reference")
	}

	var ref Ref
	if source, attr, ok := strings.Cut(text, "#"); ok {
		if !identifier.MatchString(source) {
			return Ref{}, errors.Newf(errors.ErrPackageRef, "invalid source name in %q", s)
		}
		ref.Source = source
		text = attr
	}

	parts := strings.Split(text, ".")
	for _, part := range parts {
		if !identifier.MatchString(part) {
			return Ref{}, errors.Newf(errors.ErrPackageRef, "invalid attribute %q in %q", part, s)
		}
	}
	ref.Name = parts[0]
	if len(parts) > 1 {
		ref.AttrPath = parts[1:]
	}
	return ref, nil
}

// MustParseRef is ParseRef for literals known to be valid
func MustParseRef(s string) Ref {
	ref, err := ParseRef(s)
	if err != nil {
		panic(err)
	}
	return ref
}

// Attr returns the dotted attribute path without the source
func (r Ref) Attr() string {
	return strings.Join(append([]string{r.Name}, r.AttrPath...), ".")
}

// String returns the canonical text form
func (r Ref) String() string {
	if r.Source != "" {
		return r.Source + "#" + r.Attr()
	}
	return r.Attr()
}

// FromSource reports whether the reference comes from an external source
func (r Ref) FromSource() bool {
	return r.Source != ""
}

// MarshalText makes refs render as their canonical string in JSON, YAML and TOML
func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText parses the canonical string
func (r *Ref) UnmarshalText(b []byte) error {
	parsed, err := ParseRef(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
