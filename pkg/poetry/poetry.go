package poetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	errs "github.com/matzehuels/nocap/pkg/errors"
)

// DefaultBinary is the executable looked up on PATH when none is configured.
const DefaultBinary = "poetry"

// Runner runs one Poetry command to completion.
type Runner interface {
	Run(ctx context.Context, args ...string) error
}

// Exec runs Poetry as a child process. The zero value runs "poetry" in the
// current directory with the parent's stdio.
type Exec struct {
	Binary string    // executable name or path; DefaultBinary if empty
	Dir    string    // working directory; current directory if empty
	Env    []string  // extra KEY=VALUE pairs appended to the parent env
	Stdout io.Writer // os.Stdout if nil
	Stderr io.Writer // os.Stderr if nil
}

// Run starts the binary with args and blocks until it exits. A failure to
// start returns SUBPROCESS_LAUNCH_FAILED; a non-zero or abnormal exit returns
// an *errors.ExitError. If ctx is cancelled the child is killed and the
// context error is returned.
func (e *Exec) Run(ctx context.Context, args ...string) error {
	bin := e.Binary
	if bin == "" {
		bin = DefaultBinary
	}
	line := commandLine(bin, args)

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = e.Dir
	if len(e.Env) > 0 {
		cmd.Env = append(os.Environ(), e.Env...)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = writerOr(e.Stdout, os.Stdout)
	cmd.Stderr = writerOr(e.Stderr, os.Stderr)

	if err := cmd.Start(); err != nil {
		return errs.Wrap(errs.ErrCodeSubprocessLaunch, err, "could not start %q", line)
	}
	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s interrupted: %w", line, ctxErr)
		}
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		return &errs.ExitError{Command: line, ExitCode: code, Cause: err}
	}
	return nil
}

// AddArgs builds the argument vector for "poetry add". packages is split on
// single spaces exactly as given.
func AddArgs(packages string) []string {
	return append([]string{"add"}, strings.Split(packages, " ")...)
}

// LockArgs builds the argument vector that refreshes poetry.lock without
// upgrading any locked version.
func LockArgs() []string {
	return []string{"lock", "--no-update"}
}

// UpdateArgs builds the argument vector for "poetry update".
func UpdateArgs() []string {
	return []string{"update"}
}

func commandLine(bin string, args []string) string {
	return strings.Join(append([]string{bin}, args...), " ")
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
