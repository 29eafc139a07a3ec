package n8n

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
)

// containerUpdatePath is where the update payload lands inside the container
// before import.
const containerUpdatePath = "/tmp/n8nops_workflow_update.json"

// UpdateSource is the workflow definition to import: either inline JSON or a
// path to a JSON file on the host. Exactly one must be set.
type UpdateSource struct {
	Data     json.RawMessage
	FilePath string
}

func (s UpdateSource) validate() error {
	if len(s.Data) == 0 && s.FilePath == "" {
		return ErrNoUpdateSource
	}
	if len(s.Data) > 0 && s.FilePath != "" {
		return ErrConflictingUpdate
	}
	return nil
}

// step is one named stage of a multi-step operation. Steps run in order and
// the first failure aborts the rest, with the step name on the error.
type step struct {
	name string
	run  func(ctx context.Context) error
}

func runSteps(ctx context.Context, steps []step) error {
	for _, st := range steps {
		if err := st.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", st.name, err)
		}
	}
	return nil
}

// UpdateWorkflow replaces a workflow definition and activates it. The current
// definition is exported inside the container first, so a bad import can be
// recovered by hand. The container is restarted at the end so the running
// instance picks up the new definition.
//
// A missing workflow id fails at the backup step; unlike Troubleshoot, update
// does not tolerate an unknown id.
func (c *Client) UpdateWorkflow(ctx context.Context, workflowID string, source UpdateSource) (string, error) {
	if err := source.validate(); err != nil {
		return "", err
	}

	backupPath := path.Join("/tmp", fmt.Sprintf("n8nops_pre_update_%s_%d.json", workflowID, c.now().UnixNano()))

	hostPath := source.FilePath
	var tempFile string
	defer func() {
		if tempFile != "" {
			_ = os.Remove(tempFile)
		}
	}()

	steps := []step{
		{
			name: "backup current workflow",
			run: func(ctx context.Context) error {
				return c.exportWorkflow(ctx, workflowID, backupPath)
			},
		},
		{
			name: "prepare update payload",
			run: func(ctx context.Context) error {
				if len(source.Data) == 0 {
					_, err := os.Stat(hostPath)
					return err
				}
				f, err := os.CreateTemp("", "n8nops_update_*.json")
				if err != nil {
					return err
				}
				tempFile = f.Name()
				hostPath = f.Name()
				if _, err := f.Write(source.Data); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			},
		},
		{
			name: "copy payload into container",
			run: func(ctx context.Context) error {
				return c.copyToContainer(ctx, hostPath, containerUpdatePath)
			},
		},
		{
			name: "import workflow",
			run: func(ctx context.Context) error {
				return c.importWorkflow(ctx, containerUpdatePath)
			},
		},
		{
			name: "activate workflow",
			run: func(ctx context.Context) error {
				return c.activateWorkflow(ctx, workflowID)
			},
		},
		{
			name: "restart container",
			run:  c.RestartContainer,
		},
	}

	if err := runSteps(ctx, steps); err != nil {
		return "", err
	}
	return fmt.Sprintf("workflow %s updated and activated", workflowID), nil
}
