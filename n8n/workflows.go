package n8n

import (
	"context"
	"strings"
)

// WorkflowSummary is one row of the n8n workflow listing. Summaries are
// recomputed from the CLI on every call; nothing is cached.
type WorkflowSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// ListWorkflows returns the workflows known to the n8n instance, in the
// order the CLI reports them.
func (c *Client) ListWorkflows(ctx context.Context) ([]WorkflowSummary, error) {
	out, err := c.execInContainer(ctx, "n8n", "list:workflow")
	if err != nil {
		return nil, err
	}
	return parseWorkflowList(out), nil
}

// parseWorkflowList parses the tabular listing output. Each row is
// "<id> <name...> <Active|Inactive>"; the name may contain spaces, so the
// first and last columns anchor the split. Rows that don't fit the shape
// are skipped rather than failing the whole listing.
func parseWorkflowList(out string) []WorkflowSummary {
	var summaries []WorkflowSummary
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		state := fields[len(fields)-1]
		var active bool
		switch strings.ToLower(state) {
		case "active", "true":
			active = true
		case "inactive", "false":
			active = false
		default:
			continue
		}
		summaries = append(summaries, WorkflowSummary{
			ID:     fields[0],
			Name:   strings.Join(fields[1:len(fields)-1], " "),
			Active: active,
		})
	}
	return summaries
}

// FindWorkflow searches the listing for the given id. Returns
// ErrWorkflowNotFound when the id is absent.
func (c *Client) FindWorkflow(ctx context.Context, workflowID string) (WorkflowSummary, error) {
	summaries, err := c.ListWorkflows(ctx)
	if err != nil {
		return WorkflowSummary{}, err
	}
	for _, s := range summaries {
		if s.ID == workflowID {
			return s, nil
		}
	}
	return WorkflowSummary{}, ErrWorkflowNotFound
}

// exportWorkflow exports a single workflow to a file inside the container.
func (c *Client) exportWorkflow(ctx context.Context, workflowID, containerPath string) error {
	_, err := c.execInContainer(ctx, "n8n", "export:workflow", "--id="+workflowID, "--output="+containerPath)
	return err
}

// exportAllWorkflows exports every workflow to a file inside the container.
func (c *Client) exportAllWorkflows(ctx context.Context, containerPath string) error {
	_, err := c.execInContainer(ctx, "n8n", "export:workflow", "--all", "--output="+containerPath)
	return err
}

// importWorkflow imports a workflow JSON file already inside the container.
func (c *Client) importWorkflow(ctx context.Context, containerPath string) error {
	_, err := c.execInContainer(ctx, "n8n", "import:workflow", "--input="+containerPath)
	return err
}

// activateWorkflow flips a workflow's active flag on.
func (c *Client) activateWorkflow(ctx context.Context, workflowID string) error {
	_, err := c.execInContainer(ctx, "n8n", "update:workflow", "--id="+workflowID, "--active=true")
	return err
}
