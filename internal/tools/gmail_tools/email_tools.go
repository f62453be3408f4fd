package gmail_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

// registerReadTools registers the Gmail tools that never mutate the mailbox.
func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	listTool := mcp.NewTool("gmail_list_emails",
		mcp.WithDescription("List recent emails from the inbox"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of emails to return (default: 10)"),
		),
	)
	s.AddTool(listTool, common.InstrumentedToolHandlerWithService("gmail_list_emails", instrumentation.ServiceGmail, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEmails(ctx, request, sc)
		}))

	searchTool := mcp.NewTool("gmail_search_emails",
		mcp.WithDescription("Search emails with a Gmail query (e.g. 'from:alice is:unread')"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Gmail search query"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results (default: 10)"),
		),
	)
	s.AddTool(searchTool, common.InstrumentedToolHandlerWithService("gmail_search_emails", instrumentation.ServiceGmail, instrumentation.OperationSearch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSearchEmails(ctx, request, sc)
		}))

	readTool := mcp.NewTool("gmail_read_email",
		mcp.WithDescription("Read the full content of a specific email"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The ID of the message to read"),
		),
	)
	s.AddTool(readTool, common.InstrumentedToolHandlerWithService("gmail_read_email", instrumentation.ServiceGmail, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReadEmail(ctx, request, sc)
		}))
}

func handleListEmails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	limit := common.IntArg(args, "limit", defaultListLimit)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := gmailClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		messages, err := client.ListMessages(limit)
		if err != nil {
			return common.Errorf("failed to list emails: %v", err), nil
		}
		return common.SuccessData(messages), nil
	}

	res := sc.Runner().Run(ctx, gogcli.GmailList(int(limit)), account)
	return common.RunnerResult(res), nil
}

func handleSearchEmails(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	query := common.StringArg(args, "query")
	if query == "" {
		return common.MissingArg("query"), nil
	}
	limit := common.IntArg(args, "limit", defaultListLimit)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := gmailClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		messages, err := client.SearchMessages(query, limit)
		if err != nil {
			return common.Errorf("failed to search emails: %v", err), nil
		}
		return common.SuccessData(messages), nil
	}

	res := sc.Runner().Run(ctx, gogcli.GmailSearch(query, int(limit)), account)
	return common.RunnerResult(res), nil
}

func handleReadEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	messageID := common.StringArg(args, "message_id")
	if messageID == "" {
		return common.MissingArg("message_id"), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := gmailClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		detail, err := client.ReadMessage(messageID)
		if err != nil {
			return common.Errorf("failed to read email: %v", err), nil
		}
		return common.SuccessData(detail), nil
	}

	res := sc.Runner().Run(ctx, gogcli.GmailRead(messageID), account)
	return common.RunnerResult(res), nil
}
