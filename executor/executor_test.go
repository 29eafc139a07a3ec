package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunnerCapturesOutput(t *testing.T) {
	r := NewExecRunner()

	out, err := r.Run(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	r := NewExecRunner()

	_, err := r.Run(context.Background(), "sh", "-c", "echo boom >&2; exit 3")
	require.Error(t, err)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "sh -c echo boom >&2; exit 3", execErr.Cmd)
	assert.Equal(t, "boom", execErr.Output)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecRunnerStartFailure(t *testing.T) {
	r := NewExecRunner()

	_, err := r.Run(context.Background(), "n8nops-no-such-binary")
	require.Error(t, err)

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, "n8nops-no-such-binary", execErr.Cmd)
}

func TestCommandLine(t *testing.T) {
	assert.Equal(t, "docker", CommandLine("docker"))
	assert.Equal(t, "docker restart n8n", CommandLine("docker", "restart", "n8n"))
}
