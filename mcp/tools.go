package mcp

import (
	"context"
	"encoding/json"

	"github.com/n8nops/n8nops/n8n"

	gomcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// backupView is the JSON representation returned by backup_workflows.
type backupView struct {
	File string `json:"file"`
}

// handleListWorkflows returns the workflow listing as JSON.
func handleListWorkflows(manager WorkflowManager) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: list_workflows")
		summaries, err := manager.ListWorkflows(ctx)
		if err != nil {
			Log("list_workflows error: %v", err)
			return gomcp.NewToolResultError("failed to list workflows: " + err.Error()), nil
		}

		if len(summaries) == 0 {
			Log("list_workflows: no workflows found")
			return gomcp.NewToolResultText("No workflows found."), nil
		}

		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return gomcp.NewToolResultError("failed to marshal workflows: " + err.Error()), nil
		}

		Log("list_workflows: returning %d workflows", len(summaries))
		return gomcp.NewToolResultText(string(data)), nil
	}
}

// handleUpdateWorkflow replaces a workflow definition from inline JSON or a
// host file.
func handleUpdateWorkflow(manager WorkflowManager) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		workflowID := req.GetString("workflowId", "")
		Log("tool call: update_workflow (workflowId=%s)", workflowID)
		if workflowID == "" {
			return gomcp.NewToolResultError("missing required parameter: workflowId"), nil
		}

		source := n8n.UpdateSource{
			FilePath: req.GetString("filePath", ""),
		}
		if args := req.GetArguments(); args != nil {
			if raw, exists := args["updateData"]; exists && raw != nil {
				data, err := json.Marshal(raw)
				if err != nil {
					return gomcp.NewToolResultError("invalid updateData: " + err.Error()), nil
				}
				source.Data = data
			}
		}

		message, err := manager.UpdateWorkflow(ctx, workflowID, source)
		if err != nil {
			Log("update_workflow error: %v", err)
			return gomcp.NewToolResultError("failed to update workflow: " + err.Error()), nil
		}

		Log("update_workflow: %s done", workflowID)
		return gomcp.NewToolResultText(message), nil
	}
}

// handleRestartContainer restarts the n8n container.
func handleRestartContainer(manager WorkflowManager) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: restart_container")
		if err := manager.RestartContainer(ctx); err != nil {
			Log("restart_container error: %v", err)
			return gomcp.NewToolResultError("failed to restart container: " + err.Error()), nil
		}

		Log("restart_container: done")
		return gomcp.NewToolResultText("Container restarted. Waited for the service to start; no readiness probe was performed."), nil
	}
}

// handleBackupWorkflows exports all workflows and reports the backup file name.
func handleBackupWorkflows(manager WorkflowManager) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		Log("tool call: backup_workflows")
		fileName, err := manager.BackupWorkflows(ctx)
		if err != nil {
			Log("backup_workflows error: %v", err)
			return gomcp.NewToolResultError("failed to back up workflows: " + err.Error()), nil
		}

		data, err := json.MarshalIndent(backupView{File: fileName}, "", "  ")
		if err != nil {
			return gomcp.NewToolResultError("failed to marshal backup result: " + err.Error()), nil
		}

		Log("backup_workflows: wrote %s", fileName)
		return gomcp.NewToolResultText(string(data)), nil
	}
}

// handleTroubleshoot runs the diagnostic checks for a workflow. The checks
// themselves never abort the operation; failures show up as check entries.
func handleTroubleshoot(manager WorkflowManager) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
		workflowID := req.GetString("workflowId", "")
		Log("tool call: troubleshoot (workflowId=%s)", workflowID)
		if workflowID == "" {
			return gomcp.NewToolResultError("missing required parameter: workflowId"), nil
		}

		results := manager.Troubleshoot(ctx, workflowID)

		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return gomcp.NewToolResultError("failed to marshal check results: " + err.Error()), nil
		}

		Log("troubleshoot: returning %d checks", len(results))
		return gomcp.NewToolResultText(string(data)), nil
	}
}
