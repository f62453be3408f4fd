package gmail_tools

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/gmail"
	"github.com/mcptools/workspace-mcp/internal/google"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

const defaultListLimit = 10

// RegisterGmailTools registers all Gmail tools with the MCP server. Read
// tools are always available; tools that mutate the mailbox are only
// registered when the server is not in read-only mode.
func RegisterGmailTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registerReadTools(s, sc)
	if !sc.ReadOnly() {
		registerWriteTools(s, sc)
	}
	return nil
}

// gmailClient retrieves the Gmail client for the account, or an error
// result with authorization instructions when no token is stored.
func gmailClient(sc *server.ServerContext, account string) (*gmail.Client, *mcp.CallToolResult) {
	client := sc.GmailClientForAccount(account)
	if client == nil {
		return nil, common.NoTokenError(account, google.AuthInstructions(account))
	}
	return client, nil
}

// splitAddresses turns a comma-separated address list into a slice,
// dropping empty entries.
func splitAddresses(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
