package docs_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/docs"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/google"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

// RegisterDocsTools registers all Docs tools with the MCP server. Read
// tools are always available; mutating tools require yolo mode.
func RegisterDocsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	readTool := mcp.NewTool("docs_read",
		mcp.WithDescription("Read a Google Doc as plain text"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Document ID or full Google Docs URL"),
		),
	)
	s.AddTool(readTool, common.InstrumentedToolHandlerWithService("docs_read", instrumentation.ServiceDocs, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRead(ctx, request, sc)
		}))

	if sc.ReadOnly() {
		return nil
	}

	createTool := mcp.NewTool("docs_create",
		mcp.WithDescription("Create a new Google Doc"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Document title"),
		),
		mcp.WithString("content",
			mcp.Description("Initial document text"),
		),
	)
	s.AddTool(createTool, common.InstrumentedToolHandlerWithService("docs_create", instrumentation.ServiceDocs, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreate(ctx, request, sc)
		}))

	appendTool := mcp.NewTool("docs_append",
		mcp.WithDescription("Append text to the end of a Google Doc"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Document ID or full Google Docs URL"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Text to append"),
		),
	)
	s.AddTool(appendTool, common.InstrumentedToolHandlerWithService("docs_append", instrumentation.ServiceDocs, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAppend(ctx, request, sc)
		}))

	deleteTool := mcp.NewTool("docs_delete",
		mcp.WithDescription("Delete a Google Doc"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("Document ID or full Google Docs URL"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedToolHandlerWithService("docs_delete", instrumentation.ServiceDocs, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDelete(ctx, request, sc)
		}))

	return nil
}

func docsClient(sc *server.ServerContext, account string) (*docs.Client, *mcp.CallToolResult) {
	client := sc.DocsClientForAccount(account)
	if client == nil {
		return nil, common.NoTokenError(account, google.AuthInstructions(account))
	}
	return client, nil
}

func handleCreate(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	title := common.StringArg(args, "title")
	if title == "" {
		return common.MissingArg("title"), nil
	}
	content := common.StringArg(args, "content")
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := docsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		info, err := client.Create(title, content)
		if err != nil {
			return common.Errorf("failed to create document: %v", err), nil
		}
		return common.SuccessData(info), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DocsCreate(title, content), account)
	return common.RunnerResult(res), nil
}

func handleRead(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "document_id")
	if id == "" {
		return common.MissingArg("document_id"), nil
	}
	id = docs.ParseDocumentID(id)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := docsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		content, err := client.Read(id)
		if err != nil {
			return common.Errorf("failed to read document: %v", err), nil
		}
		return common.SuccessData(content), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DocsGet(id), account)
	return common.RunnerResult(res), nil
}

func handleAppend(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "document_id")
	if id == "" {
		return common.MissingArg("document_id"), nil
	}
	id = docs.ParseDocumentID(id)
	text := common.StringArg(args, "text")
	if text == "" {
		return common.MissingArg("text"), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := docsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		if err := client.Append(id, text); err != nil {
			return common.Errorf("failed to append to document: %v", err), nil
		}
		return common.SuccessData(map[string]string{"document_id": id}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DocsAppend(id, text), account)
	return common.RunnerResult(res), nil
}

func handleDelete(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "document_id")
	if id == "" {
		return common.MissingArg("document_id"), nil
	}
	id = docs.ParseDocumentID(id)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := docsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		if err := client.Delete(id); err != nil {
			return common.Errorf("failed to delete document: %v", err), nil
		}
		return common.SuccessData(map[string]string{"document_id": id}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DocsDelete(id), account)
	return common.RunnerResult(res), nil
}
