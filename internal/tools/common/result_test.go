package common

import (
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcptools/workspace-mcp/internal/gogcli"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("result has no content")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("content is not text: %T", result.Content[0])
	}
	return text.Text
}

func TestRunnerResult_Success(t *testing.T) {
	res := gogcli.Result{
		Success: true,
		Output:  "3 messages",
	}

	result := RunnerResult(res)
	if result.IsError {
		t.Error("success result should not be an error")
	}

	var decoded gogcli.Result
	if err := json.Unmarshal([]byte(resultText(t, result)), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !decoded.Success || decoded.Output != "3 messages" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRunnerResult_Failure(t *testing.T) {
	res := gogcli.Result{
		Success:    false,
		Stderr:     "permission denied",
		Error:      "gogcli exited with code 1",
		ReturnCode: 1,
	}

	result := RunnerResult(res)
	if !result.IsError {
		t.Error("failed result should be an error")
	}

	var decoded gogcli.Result
	if err := json.Unmarshal([]byte(resultText(t, result)), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Success || decoded.ReturnCode != 1 || decoded.Stderr != "permission denied" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestSuccessData(t *testing.T) {
	result := SuccessData(map[string]string{"id": "abc123"})
	if result.IsError {
		t.Error("should not be an error result")
	}

	var envelope struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !envelope.Success || envelope.Data["id"] != "abc123" {
		t.Errorf("envelope = %+v", envelope)
	}
}

func TestSuccessText(t *testing.T) {
	result := SuccessText("done")

	var envelope struct {
		Success bool   `json:"success"`
		Output  string `json:"output"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !envelope.Success || envelope.Output != "done" {
		t.Errorf("envelope = %+v", envelope)
	}
}

func TestErrorf(t *testing.T) {
	result := Errorf("spreadsheet %s not found", "abc")
	if !result.IsError {
		t.Error("should be an error result")
	}

	var envelope struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if envelope.Success || envelope.Error != "spreadsheet abc not found" {
		t.Errorf("envelope = %+v", envelope)
	}
}

func TestMissingArg(t *testing.T) {
	result := MissingArg("spreadsheet_id")
	if !result.IsError {
		t.Error("should be an error result")
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if envelope.Error != "spreadsheet_id is required" {
		t.Errorf("error = %q", envelope.Error)
	}
}

func TestNoTokenError(t *testing.T) {
	result := NoTokenError("work", "Run google_auth_status for instructions.")
	if !result.IsError {
		t.Error("should be an error result")
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(resultText(t, result)), &envelope); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if envelope.Error == "" {
		t.Fatal("error message should not be empty")
	}
}
