package n8n

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupWorkflows(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestClient(t, runner)
	c.now = func() time.Time {
		return time.Date(2026, 8, 29, 12, 0, 0, 123456789, time.UTC)
	}

	fileName, err := c.BackupWorkflows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "n8n_backup_20260829_120000_123456789.json", fileName)

	require.Len(t, runner.calls, 2)
	assert.Contains(t, runner.calls[0], "export:workflow --all --output=/tmp/"+fileName)
	assert.Equal(t, "docker cp n8n-test:/tmp/"+fileName+" "+fileName, runner.calls[1])
}

func TestBackupFileNamesUniqueWithinSameSecond(t *testing.T) {
	runner := &fakeRunner{}
	c := newTestClient(t, runner)

	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	ticks := 0
	c.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * time.Microsecond)
	}

	first, err := c.BackupWorkflows(context.Background())
	require.NoError(t, err)
	second, err := c.BackupWorkflows(context.Background())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	// Nanoseconds are zero-padded, so names sort with time.
	assert.Less(t, first, second)
}

func TestBackupExportFailureSkipsCopy(t *testing.T) {
	runner := &fakeRunner{failOn: "export:workflow"}
	c := newTestClient(t, runner)

	_, err := c.BackupWorkflows(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export workflows")
	assert.Empty(t, runner.callsContaining("docker cp"))
}
