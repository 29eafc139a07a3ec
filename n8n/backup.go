package n8n

import (
	"context"
	"fmt"
	"path"
)

// BackupWorkflows exports every workflow to a timestamped file inside the
// container, copies it out to the current working directory, and returns the
// file name. The name embeds wall-clock time down to nanoseconds, so two
// backups taken within the same second still get distinct names.
func (c *Client) BackupWorkflows(ctx context.Context) (string, error) {
	now := c.now()
	fileName := fmt.Sprintf("n8n_backup_%s_%09d.json", now.Format("20060102_150405"), now.Nanosecond())
	containerPath := path.Join("/tmp", fileName)

	steps := []step{
		{
			name: "export workflows",
			run: func(ctx context.Context) error {
				return c.exportAllWorkflows(ctx, containerPath)
			},
		},
		{
			name: "copy backup out of container",
			run: func(ctx context.Context) error {
				return c.copyFromContainer(ctx, containerPath, fileName)
			},
		},
	}

	if err := runSteps(ctx, steps); err != nil {
		return "", err
	}
	return fileName, nil
}
