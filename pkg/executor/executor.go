package executor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	dotctlerrors "github.com/arthur-debert/dotctl/pkg/errors"
	"github.com/arthur-debert/dotctl/pkg/logging"
	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/rs/zerolog"
)

// CommandExecutor runs commands with os/exec
type CommandExecutor struct {
	logger zerolog.Logger
	dryRun bool
}

// New creates a command executor. In dry-run mode commands are logged and
// reported as successful without being started.
func New(dryRun bool) *CommandExecutor {
	return &CommandExecutor{
		logger: logging.GetLogger("executor"),
		dryRun: dryRun,
	}
}

// Run starts cmd and waits for it
func (e *CommandExecutor) Run(ctx context.Context, cmd types.Command) (int, error) {
	if cmd.Name == "" {
		return 1, dotctlerrors.New(dotctlerrors.ErrInvalidInput, "command requires a name")
	}

	logging.LogCommand(cmd.Name, cmd.Args)
	e.logger.Debug().
		Str("command", cmd.Name).
		Strs("args", cmd.Args).
		Str("dir", cmd.Dir).
		Bool("dryRun", e.dryRun).
		Msg("Running command")

	if e.dryRun {
		e.logger.Info().
			Str("command", strings.Join(append([]string{cmd.Name}, cmd.Args...), " ")).
			Msg("Dry run mode - command would be executed")
		return 0, nil
	}

	if cmd.Dir != "" {
		if _, err := os.Stat(cmd.Dir); err != nil {
			return 1, dotctlerrors.Wrapf(err, dotctlerrors.ErrFileAccess,
				"working directory does not exist: %s", cmd.Dir)
		}
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Env = append(os.Environ(), cmd.Env...)
	c.Stdin = orDefault(cmd.Stdin, os.Stdin)
	c.Stdout = writerOrDefault(cmd.Stdout, os.Stdout)
	c.Stderr = writerOrDefault(cmd.Stderr, os.Stderr)

	start := time.Now()
	err := c.Run()
	logging.LogDuration(start, cmd.Name)

	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			// report signals the way a shell does
			code = 128 + int(ws.Signal())
		} else if code < 0 {
			code = 1
		}
		e.logger.Debug().
			Str("command", cmd.Name).
			Int("exitCode", code).
			Msg("Command exited with non-zero status")
		return code, nil
	}

	return 127, dotctlerrors.Wrapf(err, dotctlerrors.ErrToolStart, "failed to start %s", cmd.Name).
		WithDetail("command", cmd.Name)
}

// Output runs cmd and captures its stdout. Stderr is discarded.
func Output(ctx context.Context, commander types.Commander, cmd types.Command) (string, int, error) {
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if cmd.Stderr == nil {
		cmd.Stderr = &bytes.Buffer{}
	}
	code, err := commander.Run(ctx, cmd)
	return stdout.String(), code, err
}

func orDefault(r io.Reader, def *os.File) io.Reader {
	if r != nil {
		return r
	}
	return def
}

func writerOrDefault(w io.Writer, def *os.File) io.Writer {
	if w != nil {
		return w
	}
	return def
}

var _ types.Commander = (*CommandExecutor)(nil)
