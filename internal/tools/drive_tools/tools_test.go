package drive_tools

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/server"
)

func newEchoContext(t *testing.T) *server.ServerContext {
	t.Helper()

	runner := gogcli.NewRunner("echo", "default", 10*time.Second, false, nil)
	sc, err := server.NewServerContext(context.Background(), server.Options{
		Backend: config.BackendGogcli,
		Runner:  runner,
	})
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func requestWithArgs(args map[string]interface{}) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil || len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("content is not text: %T", result.Content[0])
	}
	return text.Text
}

func TestRegisterDriveTools(t *testing.T) {
	sc := newEchoContext(t)
	s := mcpserver.NewMCPServer("test", "0.0.1")

	if err := RegisterDriveTools(s, sc); err != nil {
		t.Fatalf("RegisterDriveTools() error = %v", err)
	}
}

func TestHandleListFiles(t *testing.T) {
	sc := newEchoContext(t)

	result, err := handleListFiles(context.Background(), requestWithArgs(map[string]interface{}{
		"query": "name contains 'report'",
		"limit": 20.0,
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := resultText(t, result)
	if !strings.Contains(body, "drive list") {
		t.Errorf("body missing list action: %s", body)
	}
	if !strings.Contains(body, "--limit 20") {
		t.Errorf("body missing limit flag: %s", body)
	}
}

func TestHandleCreateFile_MissingRequired(t *testing.T) {
	sc := newEchoContext(t)

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing name", map[string]interface{}{"mime_type": "text/plain"}, "name is required"},
		{"missing mime_type", map[string]interface{}{"name": "notes.txt"}, "mime_type is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleCreateFile(context.Background(), requestWithArgs(tt.args), sc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !result.IsError {
				t.Fatal("expected an error result")
			}
			if !strings.Contains(resultText(t, result), tt.want) {
				t.Errorf("message = %s, want %s", resultText(t, result), tt.want)
			}
		})
	}
}

func TestHandleShareFile_InvalidRole(t *testing.T) {
	sc := newEchoContext(t)

	result, err := handleShareFile(context.Background(), requestWithArgs(map[string]interface{}{
		"file_id": "f1",
		"email":   "bob@example.com",
		"role":    "admin",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	if !strings.Contains(resultText(t, result), "invalid role") {
		t.Errorf("unexpected message: %s", resultText(t, result))
	}
}

func TestHandleShareFile_DefaultRole(t *testing.T) {
	sc := newEchoContext(t)

	result, err := handleShareFile(context.Background(), requestWithArgs(map[string]interface{}{
		"file_id": "f1",
		"email":   "bob@example.com",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := resultText(t, result)
	if !strings.Contains(body, "--role reader") {
		t.Errorf("default role not applied: %s", body)
	}
}

func TestHandleCreateFolderAndDelete(t *testing.T) {
	sc := newEchoContext(t)

	folder, err := handleCreateFolder(context.Background(), requestWithArgs(map[string]interface{}{
		"name": "Reports",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, folder), "drive mkdir") {
		t.Errorf("folder body = %s", resultText(t, folder))
	}

	deleted, err := handleDeleteFile(context.Background(), requestWithArgs(map[string]interface{}{
		"file_id": "f9",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, deleted), "drive delete") {
		t.Errorf("delete body = %s", resultText(t, deleted))
	}
}
