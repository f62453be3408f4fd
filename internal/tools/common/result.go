package common

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcptools/workspace-mcp/internal/gogcli"
)

// successEnvelope is the JSON shape for api-backend tool output.
type successEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Output  string      `json:"output,omitempty"`
}

// errorEnvelope is the JSON shape for tool failures.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// RunnerResult converts a gogcli invocation outcome into a tool result.
// The full result is serialized either way so clients see stdout, stderr,
// and the exit code exactly as the subprocess produced them.
func RunnerResult(res gogcli.Result) *mcp.CallToolResult {
	body, err := json.Marshal(res)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(`{"success":false,"error":%q}`, err.Error()))
	}
	if res.Success {
		return mcp.NewToolResultText(string(body))
	}
	return mcp.NewToolResultError(string(body))
}

// SuccessData wraps an api-backend payload in a success envelope.
func SuccessData(data interface{}) *mcp.CallToolResult {
	body, err := json.Marshal(successEnvelope{Success: true, Data: data})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(`{"success":false,"error":%q}`, err.Error()))
	}
	return mcp.NewToolResultText(string(body))
}

// SuccessText wraps a plain text payload in a success envelope.
func SuccessText(output string) *mcp.CallToolResult {
	body, err := json.Marshal(successEnvelope{Success: true, Output: output})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(`{"success":false,"error":%q}`, err.Error()))
	}
	return mcp.NewToolResultText(string(body))
}

// Errorf builds an error tool result with a JSON error envelope.
func Errorf(format string, args ...interface{}) *mcp.CallToolResult {
	body, err := json.Marshal(errorEnvelope{Success: false, Error: fmt.Sprintf(format, args...)})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf(format, args...))
	}
	return mcp.NewToolResultError(string(body))
}

// MissingArg builds the error result for a missing required argument.
func MissingArg(name string) *mcp.CallToolResult {
	return Errorf("%s is required", name)
}

// NoTokenError builds the error result for an account without a usable
// OAuth token. The instructions text already names the account and the
// consent URL; it is used verbatim when present.
func NoTokenError(account, instructions string) *mcp.CallToolResult {
	if instructions == "" {
		return Errorf("no Google OAuth token for account %q", account)
	}
	return Errorf("%s", instructions)
}
