package vpn

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/yllada/nordvpn-tray/common"
)

// CommandRunner runs a command to completion and captures its output.
// A nonzero exit is reported through exitCode, not err; err is reserved
// for failures to start or wait for the process.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, exitCode int, err error)
}

// ExecRunner runs commands with os/exec. Cancelling ctx kills the process.
type ExecRunner struct{}

// Run implements CommandRunner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// nordvpn output is scraped by label, keep it in English
	cmd.Env = append(os.Environ(), "LC_ALL=C")

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), stderr.Bytes(), 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
	}
	if ctx.Err() != nil {
		return stdout.Bytes(), stderr.Bytes(), -1, ctx.Err()
	}
	return stdout.Bytes(), stderr.Bytes(), -1, err
}

// Dispatcher schedules a callback. The GUI passes one that posts onto
// its main loop.
type Dispatcher func(func())

// Immediate runs the callback right away on the calling goroutine.
func Immediate(f func()) { f() }

// Runner starts nordvpn invocations.
type Runner struct {
	binary   string
	commands CommandRunner
	dispatch Dispatcher
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithCommandRunner replaces the os/exec backend.
func WithCommandRunner(cr CommandRunner) RunnerOption {
	return func(r *Runner) {
		r.commands = cr
	}
}

// WithDispatcher sets how callbacks are delivered.
func WithDispatcher(d Dispatcher) RunnerOption {
	return func(r *Runner) {
		r.dispatch = d
	}
}

// NewRunner creates a Runner for the given binary (default "nordvpn").
func NewRunner(binary string, opts ...RunnerOption) *Runner {
	if binary == "" {
		binary = common.DefaultBinary
	}
	r := &Runner{
		binary:   binary,
		commands: ExecRunner{},
		dispatch: Immediate,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.dispatch == nil {
		r.dispatch = Immediate
	}
	return r
}

// Binary returns the executable the runner invokes.
func (r *Runner) Binary() string {
	return r.binary
}
