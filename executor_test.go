package execshell

import (
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireProgram(t *testing.T, name string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test that needs a POSIX userland")
	}
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not found in PATH", name)
	}
}

func TestCommandExecutorCapturesStdout(t *testing.T) {
	t.Parallel()
	requireProgram(t, "echo")

	out, err := CommandExecutor{}.Execute(context.Background(), "echo", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", out, "the line is passed as one argument")
}

func TestCommandExecutorNonZeroExit(t *testing.T) {
	t.Parallel()
	requireProgram(t, "false")

	out, err := CommandExecutor{}.Execute(context.Background(), "false", "ignored")
	assert.NoError(t, err, "a non-zero exit status is not an error")
	assert.Empty(t, out)
}

func TestCommandExecutorMissingProgram(t *testing.T) {
	t.Parallel()

	_, err := CommandExecutor{}.Execute(context.Background(), "execshell-no-such-program", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutorStart)
	assert.Contains(t, err.Error(), "execshell-no-such-program")
}

func TestExecutorFunc(t *testing.T) {
	t.Parallel()

	var gotProgram, gotArg string
	var ex Executor = ExecutorFunc(func(_ context.Context, program, argument string) (string, error) {
		gotProgram, gotArg = program, argument
		return "ok", nil
	})

	out, err := ex.Execute(context.Background(), "prog", "arg")
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, "prog", gotProgram)
	assert.Equal(t, "arg", gotArg)
}
