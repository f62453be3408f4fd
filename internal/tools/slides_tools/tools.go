package slides_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/google"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/slides"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

// RegisterSlidesTools registers all Slides tools with the MCP server. Read
// tools are always available; mutating tools require yolo mode.
func RegisterSlidesTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	readTool := mcp.NewTool("slides_read",
		mcp.WithDescription("Read presentation metadata and slide text"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("presentation_id",
			mcp.Required(),
			mcp.Description("Presentation ID or full Google Slides URL"),
		),
	)
	s.AddTool(readTool, common.InstrumentedToolHandlerWithService("slides_read", instrumentation.ServiceSlides, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRead(ctx, request, sc)
		}))

	if sc.ReadOnly() {
		return nil
	}

	createTool := mcp.NewTool("slides_create",
		mcp.WithDescription("Create a new presentation"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Presentation title"),
		),
	)
	s.AddTool(createTool, common.InstrumentedToolHandlerWithService("slides_create", instrumentation.ServiceSlides, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreate(ctx, request, sc)
		}))

	deleteTool := mcp.NewTool("slides_delete",
		mcp.WithDescription("Delete a presentation"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("presentation_id",
			mcp.Required(),
			mcp.Description("Presentation ID or full Google Slides URL"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedToolHandlerWithService("slides_delete", instrumentation.ServiceSlides, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDelete(ctx, request, sc)
		}))

	return nil
}

func slidesClient(sc *server.ServerContext, account string) (*slides.Client, *mcp.CallToolResult) {
	client := sc.SlidesClientForAccount(account)
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
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := slidesClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		info, err := client.Create(title)
		if err != nil {
			return common.Errorf("failed to create presentation: %v", err), nil
		}
		return common.SuccessData(info), nil
	}

	res := sc.Runner().Run(ctx, gogcli.SlidesCreate(title), account)
	return common.RunnerResult(res), nil
}

func handleRead(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "presentation_id")
	if id == "" {
		return common.MissingArg("presentation_id"), nil
	}
	id = slides.ParsePresentationID(id)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := slidesClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		detail, err := client.Read(id)
		if err != nil {
			return common.Errorf("failed to read presentation: %v", err), nil
		}
		return common.SuccessData(detail), nil
	}

	res := sc.Runner().Run(ctx, gogcli.SlidesGet(id), account)
	return common.RunnerResult(res), nil
}

func handleDelete(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "presentation_id")
	if id == "" {
		return common.MissingArg("presentation_id"), nil
	}
	id = slides.ParsePresentationID(id)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := slidesClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		if err := client.Delete(id); err != nil {
			return common.Errorf("failed to delete presentation: %v", err), nil
		}
		return common.SuccessData(map[string]string{"presentation_id": id}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.SlidesDelete(id), account)
	return common.RunnerResult(res), nil
}
