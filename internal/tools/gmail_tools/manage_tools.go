package gmail_tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/gmail"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

// registerWriteTools registers the Gmail tools that mutate the mailbox.
func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) {
	sendTool := mcp.NewTool("gmail_send_email",
		mcp.WithDescription("Send an email from the account"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("to",
			mcp.Required(),
			mcp.Description("Recipient email address (comma-separated for multiple)"),
		),
		mcp.WithString("subject",
			mcp.Required(),
			mcp.Description("Email subject"),
		),
		mcp.WithString("body",
			mcp.Required(),
			mcp.Description("Email body text"),
		),
		mcp.WithString("cc",
			mcp.Description("CC recipients (comma-separated)"),
		),
		mcp.WithString("bcc",
			mcp.Description("BCC recipients (comma-separated)"),
		),
		mcp.WithBoolean("html",
			mcp.Description("Send the body as HTML instead of plain text"),
		),
	)
	s.AddTool(sendTool, common.InstrumentedToolHandlerWithService("gmail_send_email", instrumentation.ServiceGmail, instrumentation.OperationSend, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSendEmail(ctx, request, sc)
		}))

	labelTool := mcp.NewTool("gmail_label_email",
		mcp.WithDescription("Add and/or remove labels on a message"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The ID of the message to label"),
		),
		mcp.WithString("add_labels",
			mcp.Description("Comma-separated label names to add"),
		),
		mcp.WithString("remove_labels",
			mcp.Description("Comma-separated label names to remove"),
		),
	)
	s.AddTool(labelTool, common.InstrumentedToolHandlerWithService("gmail_label_email", instrumentation.ServiceGmail, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleLabelEmail(ctx, request, sc)
		}))

	archiveTool := mcp.NewTool("gmail_archive_email",
		mcp.WithDescription("Archive a message (remove it from the inbox)"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The ID of the message to archive"),
		),
	)
	s.AddTool(archiveTool, common.InstrumentedToolHandlerWithService("gmail_archive_email", instrumentation.ServiceGmail, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleArchiveEmail(ctx, request, sc)
		}))

	deleteTool := mcp.NewTool("gmail_delete_email",
		mcp.WithDescription("Move a message to the trash"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("message_id",
			mcp.Required(),
			mcp.Description("The ID of the message to delete"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedToolHandlerWithService("gmail_delete_email", instrumentation.ServiceGmail, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteEmail(ctx, request, sc)
		}))
}

func handleSendEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	to := common.StringArg(args, "to")
	if to == "" {
		return common.MissingArg("to"), nil
	}
	subject := common.StringArg(args, "subject")
	if subject == "" {
		return common.MissingArg("subject"), nil
	}
	body := common.StringArg(args, "body")
	if body == "" {
		return common.MissingArg("body"), nil
	}
	cc := common.StringArg(args, "cc")
	bcc := common.StringArg(args, "bcc")
	html := common.BoolArg(args, "html", false)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := gmailClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		id, err := client.SendEmail(&gmail.EmailMessage{
			To:      splitAddresses(to),
			Cc:      splitAddresses(cc),
			Bcc:     splitAddresses(bcc),
			Subject: subject,
			Body:    body,
			IsHTML:  html,
		})
		if err != nil {
			return common.Errorf("failed to send email: %v", err), nil
		}
		return common.SuccessData(map[string]string{"message_id": id}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.GmailSend(to, subject, body, cc, bcc, html), account)
	return common.RunnerResult(res), nil
}

func handleLabelEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	messageID := common.StringArg(args, "message_id")
	if messageID == "" {
		return common.MissingArg("message_id"), nil
	}
	addLabels := common.StringArg(args, "add_labels")
	removeLabels := common.StringArg(args, "remove_labels")
	if addLabels == "" && removeLabels == "" {
		return common.Errorf("at least one of add_labels or remove_labels is required"), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := gmailClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		if err := client.ModifyLabels(messageID, splitAddresses(addLabels), splitAddresses(removeLabels)); err != nil {
			return common.Errorf("failed to modify labels: %v", err), nil
		}
		return common.SuccessData(map[string]string{"message_id": messageID}), nil
	}

	// gogcli takes add and remove as separate invocations
	if addLabels != "" {
		res := sc.Runner().Run(ctx, gogcli.GmailLabelAdd(messageID, addLabels), account)
		if !res.Success || removeLabels == "" {
			return common.RunnerResult(res), nil
		}
	}
	res := sc.Runner().Run(ctx, gogcli.GmailLabelRemove(messageID, removeLabels), account)
	return common.RunnerResult(res), nil
}

func handleArchiveEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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
		if err := client.ArchiveMessage(messageID); err != nil {
			return common.Errorf("failed to archive email: %v", err), nil
		}
		return common.SuccessData(map[string]string{"message_id": messageID}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.GmailArchive(messageID), account)
	return common.RunnerResult(res), nil
}

func handleDeleteEmail(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
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
		if err := client.TrashMessage(messageID); err != nil {
			return common.Errorf("failed to delete email: %v", err), nil
		}
		return common.SuccessData(map[string]string{"message_id": messageID}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.GmailDelete(messageID), account)
	return common.RunnerResult(res), nil
}
