package validate

// Severity of an issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// FixKind groups fix suggestions in the summary
type FixKind string

const (
	FixNone      FixKind = ""
	FixGitignore FixKind = "gitignore"
	FixGitAdd    FixKind = "git-add"
)

// Issue is one problem found by a rule
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	File     string   `json:"file,omitempty"`
	Detail   string   `json:"detail,omitempty"`
	Fix      string   `json:"fix,omitempty"`
	FixKind  FixKind  `json:"fixKind,omitempty"`
}

// Result is the outcome of one rule
type Result struct {
	Rule   string  `json:"rule"`
	Passed bool    `json:"passed"`
	Issues []Issue `json:"issues"`
}

func newResult(rule string, issues []Issue) Result {
	return Result{Rule: rule, Passed: !hasErrors(issues), Issues: issues}
}

func hasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Summary totals a run
type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`

	// Gitignore lists files to re-include with a !path line
	Gitignore []string `json:"gitignore,omitempty"`
	// Untracked lists files to git add
	Untracked []string `json:"untracked,omitempty"`
}

// Total is the number of issues
func (s Summary) Total() int {
	return s.Errors + s.Warnings
}

// ExitCode is 1 when any error was found
func (s Summary) ExitCode() int {
	if s.Errors > 0 {
		return 1
	}
	return 0
}

// Summarize totals results and groups fix suggestions
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		for _, i := range r.Issues {
			switch i.Severity {
			case SeverityError:
				s.Errors++
			case SeverityWarning:
				s.Warnings++
			}
			if i.File == "" {
				continue
			}
			switch i.FixKind {
			case FixGitignore:
				s.Gitignore = append(s.Gitignore, i.File)
			case FixGitAdd:
				s.Untracked = append(s.Untracked, i.File)
			}
		}
	}
	return s
}
