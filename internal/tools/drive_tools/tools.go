package drive_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/drive"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/google"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

const (
	defaultListLimit = 10
	defaultShareRole = "reader"
)

// RegisterDriveTools registers all Drive tools with the MCP server. Read
// tools are always available; mutating tools require yolo mode.
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("drive_list_files",
		mcp.WithDescription("List or search files in Google Drive"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Description("Drive search query (e.g. \"name contains 'report'\")"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of files to return (default: 10)"),
		),
	)
	s.AddTool(listTool, common.InstrumentedToolHandlerWithService("drive_list_files", instrumentation.ServiceDrive, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListFiles(ctx, request, sc)
		}))

	if sc.ReadOnly() {
		return nil
	}

	createFileTool := mcp.NewTool("drive_create_file",
		mcp.WithDescription("Create a file in Google Drive"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("File name"),
		),
		mcp.WithString("mime_type",
			mcp.Required(),
			mcp.Description("MIME type (e.g. 'text/plain')"),
		),
		mcp.WithString("content",
			mcp.Description("Text content for the file"),
		),
	)
	s.AddTool(createFileTool, common.InstrumentedToolHandlerWithService("drive_create_file", instrumentation.ServiceDrive, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateFile(ctx, request, sc)
		}))

	createFolderTool := mcp.NewTool("drive_create_folder",
		mcp.WithDescription("Create a folder in Google Drive"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Folder name"),
		),
	)
	s.AddTool(createFolderTool, common.InstrumentedToolHandlerWithService("drive_create_folder", instrumentation.ServiceDrive, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateFolder(ctx, request, sc)
		}))

	shareTool := mcp.NewTool("drive_share_file",
		mcp.WithDescription("Grant a user access to a Drive file"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("file_id",
			mcp.Required(),
			mcp.Description("The ID of the file to share"),
		),
		mcp.WithString("email",
			mcp.Required(),
			mcp.Description("Email address of the user to share with"),
		),
		mcp.WithString("role",
			mcp.Description("Access role: reader, writer, or owner (default: reader)"),
		),
	)
	s.AddTool(shareTool, common.InstrumentedToolHandlerWithService("drive_share_file", instrumentation.ServiceDrive, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleShareFile(ctx, request, sc)
		}))

	deleteTool := mcp.NewTool("drive_delete_file",
		mcp.WithDescription("Delete a file from Google Drive"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("file_id",
			mcp.Required(),
			mcp.Description("The ID of the file to delete"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedToolHandlerWithService("drive_delete_file", instrumentation.ServiceDrive, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteFile(ctx, request, sc)
		}))

	return nil
}

func driveClient(sc *server.ServerContext, account string) (*drive.Client, *mcp.CallToolResult) {
	client := sc.DriveClientForAccount(account)
	if client == nil {
		return nil, common.NoTokenError(account, google.AuthInstructions(account))
	}
	return client, nil
}

func handleListFiles(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	query := common.StringArg(args, "query")
	limit := common.IntArg(args, "limit", defaultListLimit)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := driveClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		files, err := client.ListFiles(ctx, query, int(limit))
		if err != nil {
			return common.Errorf("failed to list files: %v", err), nil
		}
		return common.SuccessData(files), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DriveList(query, int(limit)), account)
	return common.RunnerResult(res), nil
}

func handleCreateFile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name := common.StringArg(args, "name")
	if name == "" {
		return common.MissingArg("name"), nil
	}
	mimeType := common.StringArg(args, "mime_type")
	if mimeType == "" {
		return common.MissingArg("mime_type"), nil
	}
	content := common.StringArg(args, "content")
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := driveClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		info, err := client.CreateFile(ctx, name, mimeType, content)
		if err != nil {
			return common.Errorf("failed to create file: %v", err), nil
		}
		return common.SuccessData(info), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DriveCreate(name, mimeType, content), account)
	return common.RunnerResult(res), nil
}

func handleCreateFolder(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	name := common.StringArg(args, "name")
	if name == "" {
		return common.MissingArg("name"), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := driveClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		info, err := client.CreateFolder(ctx, name)
		if err != nil {
			return common.Errorf("failed to create folder: %v", err), nil
		}
		return common.SuccessData(info), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DriveMkdir(name), account)
	return common.RunnerResult(res), nil
}

func handleShareFile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	fileID := common.StringArg(args, "file_id")
	if fileID == "" {
		return common.MissingArg("file_id"), nil
	}
	email := common.StringArg(args, "email")
	if email == "" {
		return common.MissingArg("email"), nil
	}
	role := common.StringArg(args, "role")
	if role == "" {
		role = defaultShareRole
	}
	if !drive.ValidShareRole(role) {
		return common.Errorf("invalid role %q, use reader, writer, or owner", role), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := driveClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		perm, err := client.ShareFile(ctx, fileID, email, role)
		if err != nil {
			return common.Errorf("failed to share file: %v", err), nil
		}
		return common.SuccessData(perm), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DriveShare(fileID, email, role), account)
	return common.RunnerResult(res), nil
}

func handleDeleteFile(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	fileID := common.StringArg(args, "file_id")
	if fileID == "" {
		return common.MissingArg("file_id"), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := driveClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		if err := client.DeleteFile(ctx, fileID); err != nil {
			return common.Errorf("failed to delete file: %v", err), nil
		}
		return common.SuccessData(map[string]string{"file_id": fileID}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.DriveDelete(fileID), account)
	return common.RunnerResult(res), nil
}
