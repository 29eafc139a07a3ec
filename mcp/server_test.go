package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
)

// handleMessage pushes a raw JSON-RPC message through the server and returns
// the marshaled response.
func handleMessage(t *testing.T, s *Server, message string) string {
	t.Helper()
	resp := s.server.HandleMessage(context.Background(), json.RawMessage(message))
	if resp == nil {
		return ""
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal response: %v", err)
	}
	return string(data)
}

func initialize(t *testing.T, s *Server) {
	t.Helper()
	resp := handleMessage(t, s, `{
		"jsonrpc": "2.0",
		"id": 1,
		"method": "initialize",
		"params": {
			"protocolVersion": "2024-11-05",
			"capabilities": {},
			"clientInfo": {"name": "test-client", "version": "0.0.1"}
		}
	}`)
	if strings.Contains(resp, `"error"`) {
		t.Fatalf("initialize failed: %s", resp)
	}
}

func TestServerRegistersAllTools(t *testing.T) {
	s := NewServer(&fakeManager{})
	initialize(t, s)

	resp := handleMessage(t, s, `{"jsonrpc": "2.0", "id": 2, "method": "tools/list"}`)

	for _, tool := range []string{
		"list_workflows",
		"update_workflow",
		"restart_container",
		"backup_workflows",
		"troubleshoot",
	} {
		if !strings.Contains(resp, fmt.Sprintf("%q", tool)) {
			t.Errorf("tools/list response missing %q", tool)
		}
	}
}

func TestServerRejectsUnknownToolWithoutBackendCall(t *testing.T) {
	manager := &fakeManager{}
	s := NewServer(manager)
	initialize(t, s)

	resp := handleMessage(t, s, `{
		"jsonrpc": "2.0",
		"id": 3,
		"method": "tools/call",
		"params": {"name": "delete_everything", "arguments": {}}
	}`)

	if !strings.Contains(resp, `"error"`) {
		t.Fatalf("expected error response, got: %s", resp)
	}
	if manager.calls != 0 {
		t.Errorf("backend called %d times for unknown tool, want 0", manager.calls)
	}
}

func TestServerRoutesToolCallToHandler(t *testing.T) {
	manager := &fakeManager{}
	s := NewServer(manager)
	initialize(t, s)

	resp := handleMessage(t, s, `{
		"jsonrpc": "2.0",
		"id": 4,
		"method": "tools/call",
		"params": {"name": "list_workflows", "arguments": {}}
	}`)

	if strings.Contains(resp, `"error"`) {
		t.Fatalf("unexpected error response: %s", resp)
	}
	if manager.calls != 1 {
		t.Errorf("backend called %d times, want 1", manager.calls)
	}
	if !strings.Contains(resp, "No workflows found.") {
		t.Errorf("response missing handler output: %s", resp)
	}
}
