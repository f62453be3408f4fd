package sheets_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/google"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/sheets"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

const defaultRange = "A1"

// RegisterSheetsTools registers all Sheets tools with the MCP server. Read
// tools are always available; mutating tools require yolo mode.
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	readTool := mcp.NewTool("sheets_read",
		mcp.WithDescription("Read cell values from a spreadsheet range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("Spreadsheet ID or full Google Sheets URL"),
		),
		mcp.WithString("range",
			mcp.Description("A1-notation range to read (default: 'A1')"),
		),
	)
	s.AddTool(readTool, common.InstrumentedToolHandlerWithService("sheets_read", instrumentation.ServiceSheets, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRead(ctx, request, sc)
		}))

	if sc.ReadOnly() {
		return nil
	}

	createTool := mcp.NewTool("sheets_create",
		mcp.WithDescription("Create a new spreadsheet, optionally with initial data"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Spreadsheet title"),
		),
		mcp.WithString("data",
			mcp.Description("Initial cell data as a JSON 2D array or CSV text (api backend only)"),
		),
	)
	s.AddTool(createTool, common.InstrumentedToolHandlerWithService("sheets_create", instrumentation.ServiceSheets, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreate(ctx, request, sc)
		}))

	writeTool := mcp.NewTool("sheets_write",
		mcp.WithDescription("Overwrite cell values in a spreadsheet range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("Spreadsheet ID or full Google Sheets URL"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("A1-notation range to write"),
		),
		mcp.WithString("data",
			mcp.Required(),
			mcp.Description("Cell data as a JSON 2D array or CSV text"),
		),
	)
	s.AddTool(writeTool, common.InstrumentedToolHandlerWithService("sheets_write", instrumentation.ServiceSheets, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleWrite(ctx, request, sc)
		}))

	appendTool := mcp.NewTool("sheets_append",
		mcp.WithDescription("Append rows to a spreadsheet after the given range"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("Spreadsheet ID or full Google Sheets URL"),
		),
		mcp.WithString("range",
			mcp.Description("A1-notation range to append after (default: 'A1')"),
		),
		mcp.WithString("data",
			mcp.Required(),
			mcp.Description("Row data as a JSON 2D array or CSV text"),
		),
	)
	s.AddTool(appendTool, common.InstrumentedToolHandlerWithService("sheets_append", instrumentation.ServiceSheets, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAppend(ctx, request, sc)
		}))

	deleteTool := mcp.NewTool("sheets_delete",
		mcp.WithDescription("Delete a spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("spreadsheet_id",
			mcp.Required(),
			mcp.Description("Spreadsheet ID or full Google Sheets URL"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedToolHandlerWithService("sheets_delete", instrumentation.ServiceSheets, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDelete(ctx, request, sc)
		}))

	return nil
}

func sheetsClient(sc *server.ServerContext, account string) (*sheets.Client, *mcp.CallToolResult) {
	client := sc.SheetsClientForAccount(account)
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
	data := common.StringArg(args, "data")
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := sheetsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		var grid [][]interface{}
		if data != "" {
			var err error
			grid, err = sheets.ParseGridData(data)
			if err != nil {
				return common.Errorf("invalid data: %v", err), nil
			}
		}
		info, err := client.Create(title, grid)
		if err != nil {
			return common.Errorf("failed to create spreadsheet: %v", err), nil
		}
		return common.SuccessData(info), nil
	}

	res := sc.Runner().Run(ctx, gogcli.SheetsCreate(title), account)
	return common.RunnerResult(res), nil
}

func handleRead(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "spreadsheet_id")
	if id == "" {
		return common.MissingArg("spreadsheet_id"), nil
	}
	id = sheets.ParseSpreadsheetID(id)
	readRange := common.StringArg(args, "range")
	if readRange == "" {
		readRange = defaultRange
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := sheetsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		values, err := client.Read(id, readRange)
		if err != nil {
			return common.Errorf("failed to read spreadsheet: %v", err), nil
		}
		return common.SuccessData(values), nil
	}

	res := sc.Runner().Run(ctx, gogcli.SheetsGet(id, readRange), account)
	return common.RunnerResult(res), nil
}

func handleWrite(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "spreadsheet_id")
	if id == "" {
		return common.MissingArg("spreadsheet_id"), nil
	}
	id = sheets.ParseSpreadsheetID(id)
	writeRange := common.StringArg(args, "range")
	if writeRange == "" {
		return common.MissingArg("range"), nil
	}
	data := common.StringArg(args, "data")
	if data == "" {
		return common.MissingArg("data"), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := sheetsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		grid, err := sheets.ParseGridData(data)
		if err != nil {
			return common.Errorf("invalid data: %v", err), nil
		}
		result, err := client.Write(id, writeRange, grid)
		if err != nil {
			return common.Errorf("failed to write spreadsheet: %v", err), nil
		}
		return common.SuccessData(result), nil
	}

	res := sc.Runner().Run(ctx, gogcli.SheetsUpdate(id, writeRange, data), account)
	return common.RunnerResult(res), nil
}

func handleAppend(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "spreadsheet_id")
	if id == "" {
		return common.MissingArg("spreadsheet_id"), nil
	}
	id = sheets.ParseSpreadsheetID(id)
	data := common.StringArg(args, "data")
	if data == "" {
		return common.MissingArg("data"), nil
	}
	appendRange := common.StringArg(args, "range")
	if appendRange == "" {
		appendRange = defaultRange
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := sheetsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		grid, err := sheets.ParseGridData(data)
		if err != nil {
			return common.Errorf("invalid data: %v", err), nil
		}
		result, err := client.Append(id, appendRange, grid)
		if err != nil {
			return common.Errorf("failed to append to spreadsheet: %v", err), nil
		}
		return common.SuccessData(result), nil
	}

	res := sc.Runner().Run(ctx, gogcli.SheetsAppend(id, appendRange, data), account)
	return common.RunnerResult(res), nil
}

func handleDelete(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	id := common.StringArg(args, "spreadsheet_id")
	if id == "" {
		return common.MissingArg("spreadsheet_id"), nil
	}
	id = sheets.ParseSpreadsheetID(id)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := sheetsClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		if err := client.Delete(id); err != nil {
			return common.Errorf("failed to delete spreadsheet: %v", err), nil
		}
		return common.SuccessData(map[string]string{"spreadsheet_id": id}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.SheetsDelete(id), account)
	return common.RunnerResult(res), nil
}
