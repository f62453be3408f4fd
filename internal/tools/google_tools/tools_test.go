package google_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/server"
)

func newTestContext(t *testing.T) *server.ServerContext {
	t.Helper()

	// Isolate the token cache so host state cannot leak in
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := server.NewServerContext(context.Background(), server.Options{
		Backend: config.BackendAPI,
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

func TestRegisterGoogleTools(t *testing.T) {
	sc := newTestContext(t)
	s := mcpserver.NewMCPServer("test", "0.0.1")

	if err := RegisterGoogleTools(s, sc); err != nil {
		t.Fatalf("RegisterGoogleTools() error = %v", err)
	}
}

func TestHandleAuthStatus_NoToken(t *testing.T) {
	sc := newTestContext(t)

	result, err := handleAuthStatus(context.Background(), requestWithArgs(map[string]interface{}{
		"account": "work",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("status check should not be an error result: %s", resultText(t, result))
	}

	body := resultText(t, result)
	if !strings.Contains(body, `"authorized":false`) {
		t.Errorf("body should report unauthorized: %s", body)
	}
	if !strings.Contains(body, `"account":"work"`) {
		t.Errorf("body missing account: %s", body)
	}
}

func TestHandleSaveAuthCode_MissingCode(t *testing.T) {
	sc := newTestContext(t)

	result, err := handleSaveAuthCode(context.Background(), requestWithArgs(nil), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	if !strings.Contains(resultText(t, result), "code is required") {
		t.Errorf("unexpected message: %s", resultText(t, result))
	}
}

func TestHandleSaveAuthCode_ExchangeFails(t *testing.T) {
	sc := newTestContext(t)

	// Without configured OAuth credentials the exchange must fail cleanly
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "")

	result, err := handleSaveAuthCode(context.Background(), requestWithArgs(map[string]interface{}{
		"code": "bogus",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}
}
