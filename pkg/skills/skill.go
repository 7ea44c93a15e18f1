package skills

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Skill is one loaded skill document
type Skill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Path        string `json:"path"`
	Body        string `json:"-"`
}

// Metadata is the YAML frontmatter of a skill file
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

var (
	frontmatterDelim = []byte("---")
	validName        = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)
)

// Parse reads a skill document. fallbackName is used when the frontmatter
// does not name the skill.
func Parse(data []byte, fallbackName string) (Skill, error) {
	meta, body, err := splitFrontmatter(data)
	if err != nil {
		return Skill{}, err
	}

	s := Skill{
		Name:        strings.TrimSpace(meta.Name),
		Description: strings.TrimSpace(meta.Description),
		Body:        body,
	}
	if s.Name == "" {
		s.Name = fallbackName
	}
	if !validName.MatchString(s.Name) {
		return Skill{}, errors.Newf(errors.ErrSkillInvalid, "invalid skill name %q", s.Name)
	}
	if s.Description == "" {
		s.Description = firstParagraph(body)
	}
	return s, nil
}

func splitFrontmatter(data []byte) (Metadata, string, error) {
	var meta Metadata
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	normalized := bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))

	if !bytes.HasPrefix(normalized, append(frontmatterDelim, '\n')) {
		return meta, string(normalized), nil
	}

	rest := normalized[len(frontmatterDelim)+1:]
	var front, body []byte
	if bytes.HasPrefix(rest, append(frontmatterDelim, '\n')) {
		// empty frontmatter
		body = rest[len(frontmatterDelim)+1:]
	} else {
		end := bytes.Index(rest, []byte("\n---\n"))
		if end < 0 {
			if !bytes.HasSuffix(rest, []byte("\n---")) {
				return meta, "", errors.New(errors.ErrSkillInvalid, "unterminated frontmatter")
			}
			end = len(rest) - len("\n---")
			front, body = rest[:end], nil
		} else {
			front, body = rest[:end], rest[end+len("\n---\n"):]
		}
	}

	if err := yaml.Unmarshal(front, &meta); err != nil {
		return meta, "", errors.Wrap(err, errors.ErrSkillInvalid, "invalid frontmatter")
	}
	return meta, string(body), nil
}

// firstParagraph returns the first line of prose, skipping headings
func firstParagraph(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
