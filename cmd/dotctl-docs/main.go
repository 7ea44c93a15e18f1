// dotctl-docs writes the man page and shell completion scripts into a
// directory for release packaging.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotctl/cmd/dotctl"
	"github.com/arthur-debert/dotctl/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <output-dir>\n", os.Args[0])
		os.Exit(1)
	}
	if err := generate(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating docs: %v\n", err)
		os.Exit(1)
	}
}

func generate(dir string) error {
	rootCmd := dotctl.NewRootCmd()

	manDir := filepath.Join(dir, "man")
	completionDir := filepath.Join(dir, "completions")
	for _, d := range []string{manDir, completionDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}

	header := &doc.GenManHeader{
		Title:   "DOTCTL",
		Section: "1",
		Source:  "dotctl " + version.Version,
		Manual:  "dotctl manual",
	}
	if err := doc.GenManTree(rootCmd, header, manDir); err != nil {
		return fmt.Errorf("man pages: %w", err)
	}

	completions := []struct {
		file string
		gen  func(*cobra.Command, string) error
	}{
		{"dotctl.bash", func(c *cobra.Command, f string) error { return c.GenBashCompletionFileV2(f, true) }},
		{"_dotctl", func(c *cobra.Command, f string) error { return c.GenZshCompletionFile(f) }},
		{"dotctl.fish", func(c *cobra.Command, f string) error { return c.GenFishCompletionFile(f, true) }},
		{"dotctl.ps1", func(c *cobra.Command, f string) error { return c.GenPowerShellCompletionFileWithDesc(f) }},
	}
	for _, c := range completions {
		if err := c.gen(rootCmd, filepath.Join(completionDir, c.file)); err != nil {
			return fmt.Errorf("%s: %w", c.file, err)
		}
	}
	return nil
}
