package testutil

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/arthur-debert/dotctl/pkg/types"
)

// CommandResult is the scripted outcome of a fake command
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

// FakeCommander records commands instead of running them. Handler, when set,
// decides the outcome; otherwise Results is consulted by command line
// (`name arg1 arg2`) and then by command name, defaulting to exit 0.
type FakeCommander struct {
	Handler func(cmd types.Command) CommandResult
	Results map[string]CommandResult

	mu    sync.Mutex
	calls []types.Command
}

// NewFakeCommander creates an empty fake
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{Results: make(map[string]CommandResult)}
}

// On scripts the result for a command line or a bare command name
func (f *FakeCommander) On(line string, result CommandResult) *FakeCommander {
	if f.Results == nil {
		f.Results = make(map[string]CommandResult)
	}
	f.Results[line] = result
	return f
}

// Run implements types.Commander
func (f *FakeCommander) Run(ctx context.Context, cmd types.Command) (int, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return 1, err
	}

	var result CommandResult
	if f.Handler != nil {
		result = f.Handler(cmd)
	} else if r, ok := f.Results[CommandLine(cmd)]; ok {
		result = r
	} else if r, ok := f.Results[cmd.Name]; ok {
		result = r
	}

	if result.Stdout != "" && cmd.Stdout != nil {
		_, _ = io.WriteString(cmd.Stdout, result.Stdout)
	}
	if result.Stderr != "" && cmd.Stderr != nil {
		_, _ = io.WriteString(cmd.Stderr, result.Stderr)
	}
	return result.ExitCode, result.Err
}

// Calls returns the recorded commands
func (f *FakeCommander) Calls() []types.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.Command, len(f.calls))
	copy(out, f.calls)
	return out
}

// Lines returns the recorded commands as command lines
func (f *FakeCommander) Lines() []string {
	calls := f.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = CommandLine(c)
	}
	return lines
}

// CommandLine joins a command's name and arguments with spaces
func CommandLine(cmd types.Command) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", cmd.Name, strings.Join(cmd.Args, " ")))
}

var _ types.Commander = (*FakeCommander)(nil)
