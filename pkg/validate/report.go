package validate

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/ui"
)

// PrintResults writes each rule with its issues and fix suggestions
func PrintResults(p *ui.Printer, results []Result) {
	for _, r := range results {
		if r.Passed {
			p.Success(r.Rule)
		} else {
			p.Failure(r.Rule)
		}

		for _, issue := range r.Issues {
			msg := "  " + issue.Message
			if issue.File != "" {
				msg += fmt.Sprintf(" (%s)", issue.File)
			}
			switch issue.Severity {
			case SeverityError:
				p.Failure(msg)
			default:
				p.Warning(msg)
			}
			if issue.Detail != "" {
				p.Muted("      " + issue.Detail)
			}
			if issue.Fix != "" {
				p.Info("    " + issue.Fix)
			}
		}
	}
}

// PrintSummary writes the totals and, with fix set, the grouped fix
// suggestions. It returns the process exit code.
func PrintSummary(p *ui.Printer, results []Result, fix bool) int {
	s := Summarize(results)

	p.Blank()
	p.Rule(60)

	switch {
	case s.Errors > 0:
		p.Failure(fmt.Sprintf("Validation failed: %d issue(s) found (%d errors, %d warnings)",
			s.Total(), s.Errors, s.Warnings))
		if fix {
			printFixes(p, s)
		}
	case s.Warnings > 0:
		p.Warning(fmt.Sprintf("Validation completed with %d warning(s)", s.Warnings))
	default:
		p.Success("All validations passed!")
	}
	return s.ExitCode()
}

func printFixes(p *ui.Printer, s Summary) {
	p.Blank()
	p.Heading("Fix suggestions:")
	p.Blank()

	if len(s.Gitignore) > 0 {
		p.Info("Add these lines to .gitignore:")
		for _, file := range s.Gitignore {
			p.Success("  !" + file)
		}
		p.Blank()
	}
	if len(s.Untracked) > 0 {
		p.Info("Run this command to track files:")
		p.Success("  git add " + strings.Join(s.Untracked, " "))
		p.Blank()
	}
}
