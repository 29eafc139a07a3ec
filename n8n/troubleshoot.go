package n8n

import (
	"context"
	"errors"
	"fmt"
)

// CheckResult is one diagnostic check outcome. Result holds either the
// check's findings or, for a failed check, the failure text.
type CheckResult struct {
	Name   string `json:"check"`
	Result string `json:"result"`
}

// Troubleshoot runs the diagnostic checks for a workflow in order: container
// run-status, workflow presence in the listing, recent container logs. A
// check that fails turns into a failed-check entry; the remaining checks
// still run. In particular an unknown workflow id is reported as "not found"
// rather than treated as an error, since that is exactly what the caller is
// trying to find out.
func (c *Client) Troubleshoot(ctx context.Context, workflowID string) []CheckResult {
	checks := []struct {
		name string
		run  func(ctx context.Context) (string, error)
	}{
		{
			name: "container status",
			run:  c.containerStatus,
		},
		{
			name: "workflow status",
			run: func(ctx context.Context) (string, error) {
				wf, err := c.FindWorkflow(ctx, workflowID)
				if err != nil {
					return "", err
				}
				state := "inactive"
				if wf.Active {
					state = "active"
				}
				return fmt.Sprintf("found %q (%s)", wf.Name, state), nil
			},
		},
		{
			name: "recent logs",
			run:  c.containerLogs,
		},
	}

	results := make([]CheckResult, 0, len(checks))
	for _, check := range checks {
		out, err := check.run(ctx)
		switch {
		case errors.Is(err, ErrWorkflowNotFound):
			out = fmt.Sprintf("workflow %s not found", workflowID)
		case err != nil:
			out = "check failed: " + err.Error()
		}
		results = append(results, CheckResult{Name: check.name, Result: out})
	}
	return results
}
