package mcp

import (
	"context"

	"github.com/n8nops/n8nops/n8n"

	gomcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

const serverInstructions = "This server manages the workflows of an n8n instance running in a " +
	"Docker container. Use list_workflows to see what exists, update_workflow to replace a " +
	"workflow definition (the current definition is backed up first), backup_workflows to " +
	"export everything to a local file, restart_container to bounce the n8n container, and " +
	"troubleshoot to run diagnostic checks on a specific workflow. All operations shell out " +
	"to the docker and n8n CLIs; the container is the source of truth."

// WorkflowManager is the backend the tool handlers call into. *n8n.Client
// implements it; tests substitute a fake.
type WorkflowManager interface {
	ListWorkflows(ctx context.Context) ([]n8n.WorkflowSummary, error)
	UpdateWorkflow(ctx context.Context, workflowID string, source n8n.UpdateSource) (string, error)
	RestartContainer(ctx context.Context) error
	BackupWorkflows(ctx context.Context) (string, error)
	Troubleshoot(ctx context.Context, workflowID string) []n8n.CheckResult
}

// Server wraps an MCP server exposing the n8n workflow-management tools.
type Server struct {
	server  *mcpserver.MCPServer
	manager WorkflowManager
}

// NewServer creates the MCP server and registers the five workflow tools.
func NewServer(manager WorkflowManager) *Server {
	s := mcpserver.NewMCPServer(
		"n8nops",
		"0.1.0",
		mcpserver.WithInstructions(serverInstructions),
	)

	srv := &Server{
		server:  s,
		manager: manager,
	}
	srv.registerTools()

	Log("server created: tools registered")
	return srv
}

func (s *Server) registerTools() {
	listWorkflows := gomcp.NewTool("list_workflows",
		gomcp.WithDescription(
			"List all workflows in the n8n instance with their id, name, and active state.",
		),
		gomcp.WithReadOnlyHintAnnotation(true),
	)
	s.server.AddTool(listWorkflows, handleListWorkflows(s.manager))

	updateWorkflow := gomcp.NewTool("update_workflow",
		gomcp.WithDescription(
			"Replace a workflow definition and activate it. The current definition is "+
				"exported inside the container first, then the new one is imported and the "+
				"container is restarted. Provide the new definition either inline via "+
				"updateData or as a host file via filePath, not both.",
		),
		gomcp.WithString("workflowId",
			gomcp.Required(),
			gomcp.Description("The id of the workflow to update."),
		),
		gomcp.WithObject("updateData",
			gomcp.Description("The full workflow definition as a JSON object."),
		),
		gomcp.WithString("filePath",
			gomcp.Description("Path to a workflow JSON file on the host."),
		),
	)
	s.server.AddTool(updateWorkflow, handleUpdateWorkflow(s.manager))

	restartContainer := gomcp.NewTool("restart_container",
		gomcp.WithDescription(
			"Restart the n8n container and wait a fixed grace period for the service to "+
				"come back up. There is no active readiness probe.",
		),
	)
	s.server.AddTool(restartContainer, handleRestartContainer(s.manager))

	backupWorkflows := gomcp.NewTool("backup_workflows",
		gomcp.WithDescription(
			"Export all workflows to a timestamped JSON file and copy it to the local "+
				"working directory. Returns the backup file name.",
		),
	)
	s.server.AddTool(backupWorkflows, handleBackupWorkflows(s.manager))

	troubleshoot := gomcp.NewTool("troubleshoot",
		gomcp.WithDescription(
			"Run diagnostic checks for a workflow: container status, workflow presence "+
				"in the listing, and recent container logs. A missing workflow is reported "+
				"as a finding, not an error.",
		),
		gomcp.WithString("workflowId",
			gomcp.Required(),
			gomcp.Description("The id of the workflow to troubleshoot."),
		),
		gomcp.WithReadOnlyHintAnnotation(true),
	)
	s.server.AddTool(troubleshoot, handleTroubleshoot(s.manager))
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve() error {
	return mcpserver.ServeStdio(s.server)
}
