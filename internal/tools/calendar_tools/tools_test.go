package calendar_tools

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

func TestRegisterCalendarTools(t *testing.T) {
	sc := newEchoContext(t)
	s := mcpserver.NewMCPServer("test", "0.0.1")

	if err := RegisterCalendarTools(s, sc); err != nil {
		t.Fatalf("RegisterCalendarTools() error = %v", err)
	}
}

func TestHandleCreateEvent(t *testing.T) {
	sc := newEchoContext(t)

	result, err := handleCreateEvent(context.Background(), requestWithArgs(map[string]interface{}{
		"title":    "Standup",
		"start":    "2026-09-01T10:00:00Z",
		"end":      "2026-09-01T10:15:00Z",
		"location": "Room 4",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	body := resultText(t, result)
	if !strings.Contains(body, "calendar create") {
		t.Errorf("body missing create action: %s", body)
	}
	if !strings.Contains(body, "--location Room 4") {
		t.Errorf("body missing location flag: %s", body)
	}
}

func TestHandleCreateEvent_MissingRequired(t *testing.T) {
	sc := newEchoContext(t)

	tests := []struct {
		name string
		args map[string]interface{}
		want string
	}{
		{"missing title", map[string]interface{}{"start": "s", "end": "e"}, "title is required"},
		{"missing start", map[string]interface{}{"title": "t", "end": "e"}, "start is required"},
		{"missing end", map[string]interface{}{"title": "t", "start": "s"}, "end is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleCreateEvent(context.Background(), requestWithArgs(tt.args), sc)
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

func TestHandleListEvents(t *testing.T) {
	sc := newEchoContext(t)

	result, err := handleListEvents(context.Background(), requestWithArgs(map[string]interface{}{
		"limit": 3.0,
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := resultText(t, result)
	if !strings.Contains(body, "calendar list") {
		t.Errorf("body missing list action: %s", body)
	}
	if !strings.Contains(body, "--limit 3") {
		t.Errorf("body missing limit flag: %s", body)
	}
}

func TestHandleUpdateEvent_MissingID(t *testing.T) {
	sc := newEchoContext(t)

	result, err := handleUpdateEvent(context.Background(), requestWithArgs(map[string]interface{}{
		"title": "Renamed",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected an error result")
	}
	if !strings.Contains(resultText(t, result), "event_id is required") {
		t.Errorf("unexpected message: %s", resultText(t, result))
	}
}

func TestHandleDeleteEvent(t *testing.T) {
	sc := newEchoContext(t)

	result, err := handleDeleteEvent(context.Background(), requestWithArgs(map[string]interface{}{
		"event_id": "evt42",
	}), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resultText(t, result), "calendar delete") {
		t.Errorf("body = %s", resultText(t, result))
	}
}

func TestSplitAttendees(t *testing.T) {
	got := splitAttendees("a@example.com, b@example.com,")
	if len(got) != 2 || got[1] != "b@example.com" {
		t.Errorf("splitAttendees() = %v", got)
	}
	if splitAttendees("") != nil {
		t.Error("empty input should return nil")
	}
}
