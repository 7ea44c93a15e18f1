package skills

import (
	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/charmbracelet/glamour"
)

// plain glamour style for non-terminal output
const noTTYStyle = "notty"

// Render renders a skill's markdown body for the terminal. With color false
// the document is laid out without ANSI styling.
func Render(s Skill, width int, color bool) (string, error) {
	options := []glamour.TermRendererOption{}
	if color {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(noTTYStyle))
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to create markdown renderer")
	}
	out, err := renderer.Render(s.Body)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrRender, "failed to render skill %s", s.Name)
	}
	return out, nil
}
