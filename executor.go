package execshell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrExecutorStart is returned when the program could not be started.
var ErrExecutorStart = errors.New("failed to start program")

// Executor runs the wrapped program once per submitted line.
type Executor interface {
	// Execute runs program with argument as its only argument and returns
	// its standard output. A non-zero exit status is not an error.
	Execute(ctx context.Context, program, argument string) (string, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, program, argument string) (string, error)

// Execute calls f.
func (f ExecutorFunc) Execute(ctx context.Context, program, argument string) (string, error) {
	return f(ctx, program, argument)
}

// CommandExecutor runs the program as a child process and captures its
// standard output. Standard error is discarded.
type CommandExecutor struct{}

// Execute implements Executor.
func (CommandExecutor) Execute(ctx context.Context, program, argument string) (string, error) {
	// #nosec G204 - running the user's program with the user's line is the point of the tool
	cmd := exec.CommandContext(ctx, program, argument)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), nil
		}
		return "", fmt.Errorf("%w %q: %w", ErrExecutorStart, program, err)
	}
	return stdout.String(), nil
}
