// Package shellout runs external commands and captures their outcome.
//
// A command line is split with POSIX-style word splitting (see Split) and
// executed directly, without involving a shell. A command that runs to
// completion always yields a Result, whatever its exit code; errors are
// reserved for inputs that cannot be split, commands that cannot be
// started, and cancelled or expired contexts.
package shellout

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/hashicorp/go-hclog"
)

// ErrEmptyCommand is returned when there is nothing to execute.
var ErrEmptyCommand = errors.New("empty command")

// Runner holds execution options. The zero value runs commands in the
// current directory with the inherited environment and no timeout.
type Runner struct {
	// Dir is the working directory for the command. Empty means the
	// calling process's directory.
	Dir string

	// Env holds extra KEY=value entries appended to the inherited
	// environment.
	Env []string

	// Stdin is connected to the command's standard input when non-nil.
	Stdin io.Reader

	// Timeout bounds the command's runtime when positive.
	Timeout time.Duration

	// Logger receives debug/info progress lines. Nil disables logging.
	Logger hclog.Logger
}

// Result is the captured outcome of one command execution.
type Result struct {
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the command exited with code zero.
func (r *Result) Success() bool { return r.ExitCode == 0 }

// Run splits command and executes it.
func (sh *Runner) Run(ctx context.Context, command string) (*Result, error) {
	args, err := Split(command)
	if err != nil {
		return nil, fmt.Errorf("cannot parse command: %w", err)
	}
	return sh.RunArgs(ctx, args)
}

// RunArgs executes a pre-split argv.
func (sh *Runner) RunArgs(ctx context.Context, argv []string) (*Result, error) {
	if len(argv) == 0 {
		return nil, ErrEmptyCommand
	}

	logger := sh.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if sh.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sh.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = sh.Dir
	cmd.Stdin = sh.Stdin
	if len(sh.Env) > 0 {
		cmd.Env = append(os.Environ(), sh.Env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("🚀 running command", "path", argv[0], "args", argv[1:])
	start := time.Now()
	err := cmd.Run()
	result := &Result{
		Args:     argv,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		// The context takes precedence: a killed command surfaces as an
		// ExitError, but the caller should see the cancellation.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("command %s: %w", argv[0], ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logger.Info("⏹️ command exited", "path", argv[0], "code", result.ExitCode, "duration", result.Duration)
			return result, nil
		}
		return nil, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}

	logger.Debug("✅ command completed", "path", argv[0], "duration", result.Duration)
	return result, nil
}

// Run executes command with default options.
func Run(ctx context.Context, command string) (*Result, error) {
	var sh Runner
	return sh.Run(ctx, command)
}
