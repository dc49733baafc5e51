package shell

import (
	"bytes"
	"context"
	"os/exec"
)

// Result holds the captured output of one external command invocation.
// A failing command is reported through Err and ExitCode, never as a Go
// error; callers branch on the fields that matter for their operation.
type Result struct {
	Out      string
	Err      string
	ExitCode int
}

// Failed reports whether the command signalled failure through either
// channel: a non-zero exit status or text on standard error.
func (r Result) Failed() bool {
	return r.ExitCode != 0 || r.Err != ""
}

// Runner executes a single external command synchronously and returns its
// captured output. One process per call, no retries.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) Result
}

// ExecRunner runs commands against the host environment. Arguments are
// passed as a vector; nothing is ever interpolated into a shell string.
type ExecRunner struct {
	// Dir is the working directory for spawned commands. Empty means the
	// current process directory.
	Dir string
}

// Run blocks until the command exits. Cancellation is only available
// through the caller's context; no timeout is imposed here.
func (e ExecRunner) Run(ctx context.Context, name string, args ...string) Result {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = e.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Out: stdout.String(),
		Err: stderr.String(),
	}

	switch err := err.(type) {
	case nil:
	case *exec.ExitError:
		res.ExitCode = err.ExitCode()
	default:
		// The process never ran (missing binary, cancelled context).
		res.ExitCode = -1
		if res.Err == "" {
			res.Err = err.Error()
		}
	}

	return res
}

// Compile-time interface conformance check.
var _ Runner = ExecRunner{}
