// Package n8n manages workflows of an n8n instance running inside a Docker
// container. The docker CLI (and the n8n CLI inside the container) is the
// authoritative backend: nothing here keeps its own workflow state.
package n8n

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/n8nops/n8nops/executor"
)

// DefaultRestartWait is how long RestartContainer blocks after issuing the
// restart before reporting success.
const DefaultRestartWait = 15 * time.Second

// DefaultLogTail is the number of container log lines fetched by Troubleshoot.
const DefaultLogTail = 50

// Client runs workflow-management operations against a single named container.
type Client struct {
	container   string
	runner      executor.Runner
	restartWait time.Duration
	logTail     int

	// injected for tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a Client targeting the given container. The container
// name is fixed for the lifetime of the client; callers pick it up from
// configuration once at startup.
func NewClient(containerName string, runner executor.Runner) (*Client, error) {
	if strings.TrimSpace(containerName) == "" {
		return nil, ErrContainerNameEmpty
	}
	return &Client{
		container:   containerName,
		runner:      runner,
		restartWait: DefaultRestartWait,
		logTail:     DefaultLogTail,
		now:         time.Now,
		sleep:       time.Sleep,
	}, nil
}

// SetRestartWait overrides the post-restart grace period.
func (c *Client) SetRestartWait(d time.Duration) {
	if d > 0 {
		c.restartWait = d
	}
}

// SetLogTail overrides the number of log lines fetched during troubleshooting.
func (c *Client) SetLogTail(n int) {
	if n > 0 {
		c.logTail = n
	}
}

// execInContainer runs a command inside the target container via docker exec.
func (c *Client) execInContainer(ctx context.Context, args ...string) (string, error) {
	return c.runner.Run(ctx, "docker", append([]string{"exec", c.container}, args...)...)
}

// copyToContainer copies a host file into the container.
func (c *Client) copyToContainer(ctx context.Context, hostPath, containerPath string) error {
	_, err := c.runner.Run(ctx, "docker", "cp", hostPath, c.container+":"+containerPath)
	return err
}

// copyFromContainer copies a container file out to the host.
func (c *Client) copyFromContainer(ctx context.Context, containerPath, hostPath string) error {
	_, err := c.runner.Run(ctx, "docker", "cp", c.container+":"+containerPath, hostPath)
	return err
}

// containerStatus returns the docker ps line for the target container.
func (c *Client) containerStatus(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "docker", "ps",
		"--filter", "name="+c.container,
		"--format", "{{.Names}}: {{.Status}}")
	if err != nil {
		return "", err
	}
	status := strings.TrimSpace(out)
	if status == "" {
		return "container " + c.container + " is not running", nil
	}
	return status, nil
}

// containerLogs returns the most recent container log lines.
func (c *Client) containerLogs(ctx context.Context) (string, error) {
	out, err := c.runner.Run(ctx, "docker", "logs", "--tail", strconv.Itoa(c.logTail), c.container)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// RestartContainer restarts the target container and blocks for the
// configured grace period. n8n exposes no readiness signal through the CLI,
// so the fixed wait stands in for a health check; success here means the
// restart was issued and the wait elapsed, nothing more.
func (c *Client) RestartContainer(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "docker", "restart", c.container); err != nil {
		return err
	}
	c.sleep(c.restartWait)
	return nil
}
