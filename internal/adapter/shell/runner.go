// Package shell provides the command runner adapter that invokes external
// configuration programs.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go-netcfg/internal/pkg/logging"
	"go-netcfg/internal/port"
)

// Runner is an adapter that implements the CommandRunner port using os/exec.
// Invocation failures are folded into the Result: the backend contract is
// (statusCode, stdout, stderr), never a Go error.
type Runner struct{}

// Ensure Runner implements the CommandRunner port
var _ port.CommandRunner = (*Runner)(nil)

// NewRunner creates a new command runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes program with args and captures trimmed stdout/stderr. The
// context deadline is enforced by exec; expiry yields a non-zero Code with
// the timeout text in Stderr.
func (r *Runner) Run(ctx context.Context, program string, args ...string) port.Result {
	cmd := exec.CommandContext(ctx, program, args...)
	hideWindow(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := port.Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	switch {
	case err == nil:
		res.Code = 0
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		res.Code = -1
		res.Stderr = "command timed out: " + context.DeadlineExceeded.Error()
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Code = exitErr.ExitCode()
		} else {
			// Program missing, not executable, etc.
			res.Code = -1
			res.Stderr = err.Error()
		}
	}

	logging.WithComponent("shell").WithFields(map[string]interface{}{
		"program": program,
		"args":    strings.Join(args, " "),
		"code":    res.Code,
	}).Debug("Command executed")

	return res
}
