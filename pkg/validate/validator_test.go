// pkg/validate/validator_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem (t.TempDir), fake git
// PURPOSE: Test every validation rule, the summary and the printed report

package validate_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/filesystem"
	"github.com/arthur-debert/dotctl/pkg/testutil"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/arthur-debert/dotctl/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGit answers the git queries the validator makes
type fakeGit struct {
	tracked map[string]bool
	ignored map[string]bool
}

func (g fakeGit) commander() *testutil.FakeCommander {
	fake := testutil.NewFakeCommander()
	fake.Handler = func(cmd types.Command) testutil.CommandResult {
		args := cmd.Args
		switch {
		case len(args) == 2 && args[0] == "ls-files" && args[1] == "-z":
			var names []string
			for name := range g.tracked {
				names = append(names, name)
			}
			return testutil.CommandResult{Stdout: strings.Join(names, "\x00") + "\x00"}
		case args[0] == "ls-files":
			if g.tracked[args[len(args)-1]] {
				return testutil.CommandResult{}
			}
			return testutil.CommandResult{ExitCode: 1}
		case args[0] == "check-ignore":
			if g.ignored[args[len(args)-1]] {
				return testutil.CommandResult{}
			}
			return testutil.CommandResult{ExitCode: 1}
		}
		return testutil.CommandResult{ExitCode: 128}
	}
	return fake
}

func defaultOptions(dir string) validate.Options {
	return validate.Options{
		Dir:     dir,
		Configs: []string{"global.toml", "macos.toml"},
		JSONC:   []string{"/.config/zed/"},
	}
}

func run(t *testing.T, dir string, g fakeGit) []validate.Result {
	t.Helper()
	v := validate.New(defaultOptions(dir), filesystem.NewOS(), g.commander())
	results, err := v.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 5)
	return results
}

func healthyCheckout(t *testing.T) (string, fakeGit) {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, ".dotter", "global.toml"), `
[zsh.files]
"zsh/zshrc" = "~/.zshrc"

[helix.files]
"helix/config.toml" = "~/.config/helix/config.toml"
`)
	testutil.WriteFile(t, filepath.Join(dir, ".dotter", "macos.toml"), `
[ghostty.files]
"ghostty/config" = "~/.config/ghostty/config"
`)
	testutil.WriteFile(t, filepath.Join(dir, "zsh", "zshrc"), "export EDITOR=hx\n")
	testutil.WriteFile(t, filepath.Join(dir, "helix", "config.toml"), "theme = \"onedark\"\n")
	testutil.WriteFile(t, filepath.Join(dir, "ghostty", "config"), "font-size = 14\n")
	testutil.WriteFile(t, filepath.Join(dir, "package.json"), `{"name": "dotfiles"}`)
	testutil.WriteFile(t, filepath.Join(dir, "home", ".config", "zed", "settings.json"), "{\n  // comment\n  \"vim_mode\": true,\n}\n")
	testutil.WriteFile(t, filepath.Join(dir, "vscode", "keys.jsonc"), "[/* none */]")

	g := fakeGit{
		tracked: map[string]bool{
			".dotter/global.toml":            true,
			".dotter/macos.toml":             true,
			"zsh/zshrc":                      true,
			"helix/config.toml":              true,
			"ghostty/config":                 true,
			"package.json":                   true,
			"home/.config/zed/settings.json": true,
			"vscode/keys.jsonc":              true,
		},
		ignored: map[string]bool{},
	}
	return dir, g
}

func TestValidate_Healthy(t *testing.T) {
	dir, g := healthyCheckout(t)
	results := run(t, dir, g)

	for _, r := range results {
		assert.True(t, r.Passed, r.Rule)
		assert.Empty(t, r.Issues, r.Rule)
	}
	assert.Equal(t, "All 3 TOML files are valid", results[3].Rule)
	assert.Equal(t, "All 3 JSON files are valid", results[4].Rule)

	s := validate.Summarize(results)
	assert.Equal(t, 0, s.ExitCode())
}

func TestValidate_MissingGlobalConfig(t *testing.T) {
	dir := t.TempDir()
	results := run(t, dir, fakeGit{})

	assert.False(t, results[0].Passed)
	require.Len(t, results[0].Issues, 1)
	assert.Equal(t, "Dotter global.toml not found", results[0].Issues[0].Message)
	assert.Equal(t, filepath.Join(dir, ".dotter", "global.toml"), results[0].Issues[0].File)
}

func TestValidate_DotterFiles(t *testing.T) {
	dir, g := healthyCheckout(t)

	// missing
	require.NoError(t, os.Remove(filepath.Join(dir, "ghostty", "config")))
	// ignored
	delete(g.tracked, "helix/config.toml")
	g.ignored["helix/config.toml"] = true
	// untracked
	delete(g.tracked, "zsh/zshrc")

	results := run(t, dir, g)
	r := results[1]
	assert.False(t, r.Passed)
	require.Len(t, r.Issues, 3)

	byFile := map[string]validate.Issue{}
	for _, i := range r.Issues {
		byFile[i.File] = i
	}

	assert.Equal(t, validate.SeverityError, byFile["ghostty/config"].Severity)
	assert.Equal(t, "File missing: ghostty/config", byFile["ghostty/config"].Message)

	assert.Equal(t, validate.SeverityError, byFile["helix/config.toml"].Severity)
	assert.Equal(t, "Add to .gitignore: !helix/config.toml", byFile["helix/config.toml"].Fix)

	assert.Equal(t, validate.SeverityWarning, byFile["zsh/zshrc"].Severity)
	assert.Equal(t, "Run: git add zsh/zshrc", byFile["zsh/zshrc"].Fix)

	s := validate.Summarize(results)
	assert.Equal(t, 2, s.Errors)
	assert.Equal(t, 1, s.Warnings)
	assert.Equal(t, []string{"helix/config.toml"}, s.Gitignore)
	assert.Equal(t, []string{"zsh/zshrc"}, s.Untracked)
	assert.Equal(t, 1, s.ExitCode())
}

func TestValidate_WarningsOnlyPass(t *testing.T) {
	dir, g := healthyCheckout(t)
	delete(g.tracked, "zsh/zshrc")

	results := run(t, dir, g)
	assert.True(t, results[1].Passed, "warnings do not fail a rule")
	assert.Equal(t, 0, validate.Summarize(results).ExitCode())
}

func TestValidate_BrokenSymlink(t *testing.T) {
	dir, g := healthyCheckout(t)
	testutil.Symlink(t, filepath.Join(dir, "nowhere"), filepath.Join(dir, "bin", "tool"))
	testutil.Symlink(t, filepath.Join(dir, "zsh", "zshrc"), filepath.Join(dir, "bin", "ok"))
	testutil.Symlink(t, filepath.Join(dir, "gone"), filepath.Join(dir, "untracked-link"))
	g.tracked["bin/tool"] = true
	g.tracked["bin/ok"] = true

	results := run(t, dir, g)
	r := results[2]
	assert.False(t, r.Passed)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "Broken symlink: bin/tool", r.Issues[0].Message)
}

func TestValidate_MalformedFiles(t *testing.T) {
	dir, g := healthyCheckout(t)
	testutil.WriteFile(t, filepath.Join(dir, "bad.toml"), "[unclosed\n")
	testutil.WriteFile(t, filepath.Join(dir, "bad.json"), `{"a": 1,}`)
	testutil.WriteFile(t, filepath.Join(dir, "bad.jsonc"), `{"a": // comment`)
	testutil.WriteFile(t, filepath.Join(dir, "untracked.json"), `{{{`)
	g.tracked["bad.toml"] = true
	g.tracked["bad.json"] = true
	g.tracked["bad.jsonc"] = true

	results := run(t, dir, g)

	require.Len(t, results[3].Issues, 1)
	assert.Equal(t, "Invalid TOML syntax: bad.toml", results[3].Issues[0].Message)
	assert.NotEmpty(t, results[3].Issues[0].Detail)

	var invalid []string
	for _, i := range results[4].Issues {
		invalid = append(invalid, i.File)
	}
	assert.ElementsMatch(t, []string{"bad.json", "bad.jsonc"}, invalid)
	assert.Equal(t, "All 5 JSON files are valid", results[4].Rule)
	assert.False(t, results[4].Passed)
}

func TestValidate_MissingDir(t *testing.T) {
	v := validate.New(defaultOptions(filepath.Join(t.TempDir(), "nope")), filesystem.NewOS(), fakeGit{}.commander())
	_, err := v.Run(context.Background())
	assert.Error(t, err)
}

func TestPrintSummary(t *testing.T) {
	results := []validate.Result{
		{Rule: "Dotter files exist and are tracked", Passed: false, Issues: []validate.Issue{
			{Severity: validate.SeverityError, Message: "File ignored by git: a", File: "a",
				Fix: "Add to .gitignore: !a", FixKind: validate.FixGitignore},
			{Severity: validate.SeverityWarning, Message: "File not tracked: b", File: "b",
				Fix: "Run: git add b", FixKind: validate.FixGitAdd},
			{Severity: validate.SeverityWarning, Message: "File not tracked: c", File: "c",
				Fix: "Run: git add c", FixKind: validate.FixGitAdd},
		}},
		{Rule: "No broken symlinks", Passed: true},
	}

	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatText)
	validate.PrintResults(p, results)
	code := validate.PrintSummary(p, results, true)

	out := buf.String()
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "✗ Dotter files exist and are tracked\n")
	assert.Contains(t, out, "✗   File ignored by git: a (a)\n")
	assert.Contains(t, out, "ℹ     Add to .gitignore: !a\n")
	assert.Contains(t, out, "⚠   File not tracked: b (b)\n")
	assert.Contains(t, out, "✓ No broken symlinks\n")
	assert.Contains(t, out, "Validation failed: 3 issue(s) found (1 errors, 2 warnings)")
	assert.Contains(t, out, "✓   !a\n")
	assert.Contains(t, out, "✓   git add b c\n")
}

func TestPrintSummary_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		results  []validate.Result
		wantCode int
		wantLine string
	}{
		{
			name:     "clean",
			results:  []validate.Result{{Rule: "x", Passed: true}},
			wantCode: 0,
			wantLine: "✓ All validations passed!",
		},
		{
			name: "warnings only",
			results: []validate.Result{{Rule: "x", Passed: true, Issues: []validate.Issue{
				{Severity: validate.SeverityWarning, Message: "m", FixKind: validate.FixGitAdd, File: "f"},
			}}},
			wantCode: 0,
			wantLine: "⚠ Validation completed with 1 warning(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			code := validate.PrintSummary(ui.NewPrinter(&buf, ui.FormatText), tt.results, true)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, buf.String(), tt.wantLine)
			assert.NotContains(t, buf.String(), "Fix suggestions")
		})
	}
}
