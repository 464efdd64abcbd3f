package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"service-menu/internal/logger"
)

// Runner executes an argv-style command and waits for it to finish.
// Implementations report failure themselves instead of returning it; the
// caller carries on either way.
type Runner interface {
	Run(command []string)
}

// ExecRunner runs commands as child processes that inherit the terminal's
// standard streams. The child writes directly to Stdout/Stderr; nothing is
// captured or buffered. Failures are printed to Stderr, never propagated.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an ExecRunner wired to the process's own standard streams.
func New() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run spawns the command and blocks until it exits. A non-zero exit or a
// failure to start is reported as a one-line message naming the command and
// the failure detail.
func (r *ExecRunner) Run(command []string) {
	if len(command) == 0 {
		fmt.Fprintln(r.Stderr, "Command failed: no command given")
		return
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("[DEBUG] %s exited with status %d\n", command[0], exitErr.ExitCode())
		}
		fmt.Fprintf(r.Stderr, "Command failed: %s: %v\n", strings.Join(command, " "), err)
	}
}
