// pkg/ui/ui_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test format parsing, style loading and plain text rendering

package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    ui.Format
		wantErr bool
	}{
		{"", ui.FormatAuto, false},
		{"auto", ui.FormatAuto, false},
		{"TERM", ui.FormatTerminal, false},
		{"plain", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	// a regular file is never a terminal
	assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(f))
	assert.Equal(t, ui.FormatJSON, ui.FormatJSON.Resolve(f))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
}

func TestDefaultStyles(t *testing.T) {
	cfg := ui.DefaultStyles()
	for _, name := range []string{"success", "error", "warning", "info", "heading", "muted", "path", "command"} {
		assert.Contains(t, cfg.Names(), name)
	}
}

func TestParseStyles_UnknownColour(t *testing.T) {
	_, err := ui.ParseStyles([]byte("styles:\n  x:\n    foreground: nope\n"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	_, err = ui.ParseStyles([]byte("styles: [\n"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestPrinter_PlainText(t *testing.T) {
	var buf bytes.Buffer
	p := ui.NewPrinter(&buf, ui.FormatText)

	p.Success("All validations passed!")
	p.Failure("Broken symlink: a")
	p.Warning("File not tracked: b")
	p.Info("Run: git add b")
	p.Rule(5)

	assert.Equal(t, "✓ All validations passed!\n"+
		"✗ Broken symlink: a\n"+
		"⚠ File not tracked: b\n"+
		"ℹ Run: git add b\n"+
		"=====\n", buf.String())
	assert.Equal(t, "x", p.Render("no-such-style", "x"))
}
