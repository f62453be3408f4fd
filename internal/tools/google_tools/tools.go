package google_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/google"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

// RegisterGoogleTools registers the OAuth helper tools with the MCP server.
// They only matter on the api backend (gogcli manages its own tokens) but
// are always registered so agents can bootstrap authorization.
func RegisterGoogleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	statusTool := mcp.NewTool("google_auth_status",
		mcp.WithDescription("Report whether a Google OAuth token is stored for the account, with authorization instructions when it is not"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)
	s.AddTool(statusTool, common.InstrumentedToolHandler("google_auth_status", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAuthStatus(ctx, request, sc)
		}))

	saveCodeTool := mcp.NewTool("google_save_auth_code",
		mcp.WithDescription("Exchange a Google OAuth authorization code and store the token for the account"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("The authorization code from the Google consent page"),
		),
	)
	s.AddTool(saveCodeTool, common.InstrumentedToolHandler("google_save_auth_code", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSaveAuthCode(ctx, request, sc)
		}))

	return nil
}

func handleAuthStatus(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	account := common.GetAccountFromArgs(sc, request.GetArguments())

	if google.HasTokenForAccount(account) {
		return common.SuccessData(map[string]interface{}{
			"account":    account,
			"authorized": true,
		}), nil
	}

	return common.SuccessData(map[string]interface{}{
		"account":      account,
		"authorized":   false,
		"instructions": google.AuthInstructions(account),
	}), nil
}

func handleSaveAuthCode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	code := common.StringArg(args, "code")
	if code == "" {
		return common.MissingArg("code"), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if err := google.SaveTokenForAccount(ctx, account, code); err != nil {
		if m := sc.Metrics(); m != nil {
			m.RecordOAuthAuth(ctx, instrumentation.OAuthResultFailure)
		}
		return common.Errorf("failed to save authorization code for account %q: %v", account, err), nil
	}

	if m := sc.Metrics(); m != nil {
		m.RecordOAuthAuth(ctx, instrumentation.OAuthResultSuccess)
	}

	// Drop any cached clients built before the token existed
	sc.InvalidateClientsForAccount(account)

	return common.SuccessData(map[string]interface{}{
		"account":    account,
		"authorized": true,
	}), nil
}
