package packages

import (
	"encoding/json"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// flake outputs that are keyed by system
var perSystemOutputs = map[string]bool{
	"packages":       true,
	"legacyPackages": true,
}

// NixExpr renders a single reference as a Nix expression. Base references
// live in pkgs; source references are read from flake inputs, with the
// system inserted for per-system outputs.
func NixExpr(r Ref) string {
	if !r.FromSource() {
		return r.Attr()
	}
	parts := []string{"inputs", r.Source, r.Name}
	if perSystemOutputs[r.Name] {
		parts = append(parts, "${pkgs.system}")
	}
	parts = append(parts, r.AttrPath...)
	return strings.Join(parts, ".")
}

// RenderNix renders a list as a `with pkgs; [ ... ]` expression
func RenderNix(refs []Ref) string {
	var b strings.Builder
	b.WriteString("with pkgs; [\n")
	for _, r := range refs {
		b.WriteString("  ")
		b.WriteString(NixExpr(r))
		b.WriteString("\n")
	}
	b.WriteString("]\n")
	return b.String()
}

// Render renders a composition in the given format: nix, json, yaml or toml.
// The nix format renders both targets as an attribute set.
func Render(c Composition, format string) ([]byte, error) {
	switch format {
	case "", "nix":
		var b strings.Builder
		b.WriteString("{ pkgs, inputs, ... }:\n{\n")
		for _, section := range []struct {
			name string
			refs []Ref
		}{{"system", c.System}, {"user", c.User}} {
			b.WriteString("  " + section.name + " = ")
			b.WriteString(strings.ReplaceAll(strings.TrimSuffix(RenderNix(section.refs), "\n"), "\n", "\n  "))
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
		return []byte(b.String()), nil
	case "json":
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRender, "failed to render json")
		}
		return append(out, '\n'), nil
	case "yaml", "yml":
		out, err := yaml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRender, "failed to render yaml")
		}
		return out, nil
	case "toml":
		out, err := toml.Marshal(c)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrRender, "failed to render toml")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported format: %s", format)
	}
}
