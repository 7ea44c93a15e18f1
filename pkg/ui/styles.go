package ui

import (
	_ "embed"
	"sort"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var embeddedStyles []byte

// ColorDef is an adaptive colour definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition referencing colours by name
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// StyleConfig is the styles.yaml document
type StyleConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// ParseStyles parses a styles document
func ParseStyles(data []byte) (*StyleConfig, error) {
	var cfg StyleConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}
	for name, def := range cfg.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref == "" {
				continue
			}
			if _, ok := cfg.Colors[ref]; !ok {
				return nil, errors.Newf(errors.ErrConfigValid, "style %q uses unknown colour %q", name, ref)
			}
		}
	}
	return &cfg, nil
}

// DefaultStyles returns the embedded styles
func DefaultStyles() *StyleConfig {
	cfg, err := ParseStyles(embeddedStyles)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Names returns the style names, sorted
func (c *StyleConfig) Names() []string {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// build creates lipgloss styles bound to r
func (c *StyleConfig) build(r *lipgloss.Renderer) map[string]lipgloss.Style {
	out := make(map[string]lipgloss.Style, len(c.Styles))
	for name, def := range c.Styles {
		style := r.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if color, ok := c.Colors[def.Foreground]; ok {
			style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
		}
		if color, ok := c.Colors[def.Background]; ok {
			style = style.Background(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
		}
		out[name] = style
	}
	return out
}
