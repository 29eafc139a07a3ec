// Package executor runs external commands and captures their output. It has
// no awareness of what a command does; callers own the command semantics.
package executor

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a command line and returns its combined output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecutionError is returned when an external command exits non-zero or
// cannot be started. It carries the full command line and captured output so
// callers can surface what actually failed.
type ExecutionError struct {
	Cmd    string
	Output string
	Err    error
}

func (e *ExecutionError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("command %q failed: %s (%v)", e.Cmd, e.Output, e.Err)
	}
	return fmt.Sprintf("command %q failed: %v", e.Cmd, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// ExecRunner is the real Runner backed by os/exec.
type ExecRunner struct{}

// NewExecRunner creates a Runner that executes commands on the host.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command, waits for completion, and returns combined
// stdout+stderr as text. A non-zero exit or start failure yields an
// *ExecutionError.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", &ExecutionError{
			Cmd:    CommandLine(name, args...),
			Output: strings.TrimSpace(string(output)),
			Err:    err,
		}
	}
	return string(output), nil
}

// CommandLine renders a command and its arguments as a single printable line.
func CommandLine(name string, args ...string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
