// Package execx runs external programs with the parent's standard streams.
// It is the single seam between zdq and the compiler/container processes it
// drives, which keeps the dispatcher testable with a fake runner.
package execx

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"zdq/internal/logger"
)

// Runner runs an external program to completion with inherited standard
// streams. Implementations return *ExitError for a non-zero child exit so
// callers can tell a failed child from a failed spawn.
type Runner interface {
	Run(name string, args ...string) error
}

// ExitError reports a child process that ran and exited non-zero.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// StdRunner runs programs against the parent's stdin/stdout/stderr. The child
// owns the terminal for its lifetime; zdq adds no output of its own beyond a
// debug echo of the command line.
type StdRunner struct{}

func (StdRunner) Run(name string, args ...string) error {
	logger.Debug("[DEBUG] Running command: %s %s\n", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return &ExitError{Code: ee.ExitCode()}
	}
	return fmt.Errorf("run %s: %w", name, err)
}
