// pkg/skills/skills_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir)
// PURPOSE: Test skill parsing, discovery and rendering

package skills_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/skills"
	"github.com/arthur-debert/dotctl/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		want     skills.Skill
		wantErr  bool
	}{
		{
			name:     "frontmatter",
			input:    "---\nname: jj-workflow\ndescription: Use jujutsu.\n---\n# JJ\n\nBody.\n",
			fallback: "ignored",
			want:     skills.Skill{Name: "jj-workflow", Description: "Use jujutsu.", Body: "# JJ\n\nBody.\n"},
		},
		{
			name:     "no frontmatter",
			input:    "# Search strategy\n\nPrefer ripgrep over grep.\n\nMore.\n",
			fallback: "search",
			want:     skills.Skill{Name: "search", Description: "Prefer ripgrep over grep.", Body: "# Search strategy\n\nPrefer ripgrep over grep.\n\nMore.\n"},
		},
		{
			name:     "frontmatter without name",
			input:    "---\ndescription: Audit allocations.\n---\nText\n",
			fallback: "alloc-audit",
			want:     skills.Skill{Name: "alloc-audit", Description: "Audit allocations.", Body: "Text\n"},
		},
		{
			name:     "crlf line endings",
			input:    "---\r\nname: docs\r\n---\r\nLook it up.\r\n",
			fallback: "x",
			want:     skills.Skill{Name: "docs", Description: "Look it up.", Body: "Look it up.\n"},
		},
		{
			name:     "empty frontmatter",
			input:    "---\n---\nHello\n",
			fallback: "hello",
			want:     skills.Skill{Name: "hello", Description: "Hello", Body: "Hello\n"},
		},
		{name: "unterminated", input: "---\nname: x\n", fallback: "x", wantErr: true},
		{name: "bad yaml", input: "---\nname: [x\n---\n", fallback: "x", wantErr: true},
		{name: "bad name", input: "---\nname: has space\n---\n", fallback: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := skills.Parse([]byte(tt.input), tt.fallback)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrSkillInvalid), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "search", "SKILL.md"), "---\ndescription: Search well.\n---\nUse rg.\n")
	testutil.WriteFile(t, filepath.Join(dir, "vcs.md"), "---\nname: jj\ndescription: Use jj.\n---\nBody\n")
	testutil.WriteFile(t, filepath.Join(dir, "README.md"), "index")
	testutil.WriteFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	testutil.MkdirAll(t, filepath.Join(dir, "empty-dir"))
	// loses to vcs.md on the name jj
	testutil.WriteFile(t, filepath.Join(dir, "zz.md"), "---\nname: jj\n---\nDuplicate\n")

	lib, err := skills.Load(dir)
	require.NoError(t, err)

	list := lib.List()
	require.Len(t, list, 2)
	assert.Equal(t, "jj", list[0].Name)
	assert.Equal(t, "search", list[1].Name)
	assert.Equal(t, filepath.Join(dir, "search", "SKILL.md"), list[1].Path)

	s, err := lib.Get("jj")
	require.NoError(t, err)
	assert.Equal(t, "Body\n", s.Body)

	_, err = lib.Get("nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestLoad_MissingDir(t *testing.T) {
	lib, err := skills.Load(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, lib.List())
}

func TestLoad_InvalidSkill(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "bad.md"), "---\nname: [\n---\n")

	_, err := skills.Load(dir)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSkillInvalid))
}

func TestRender(t *testing.T) {
	s := skills.Skill{Name: "search", Body: "# Search\n\nPrefer **ripgrep**.\n"}

	out, err := skills.Render(s, 60, false)
	require.NoError(t, err)
	assert.Contains(t, out, "Search")
	assert.Contains(t, out, "ripgrep")
}
