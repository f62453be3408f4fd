package common

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
)

// toolHandler is the handler signature used by the MCP server. The unnamed
// type keeps wrapped handlers assignable to the SDK's handler type.
type toolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// InstrumentedToolHandler wraps a tool handler with metrics and audit logging.
// It records tool invocation metrics and logs the invocation for audit purposes.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandler("my_tool", sc, handler))
func InstrumentedToolHandler(toolName string, sc *server.ServerContext, handler toolHandler) toolHandler {
	return instrumented(toolName, "", "", sc, handler)
}

// InstrumentedToolHandlerWithService is like InstrumentedToolHandler but also
// records the Google service and operation type. Depending on the backend this
// feeds either the Google API operation metrics or the gogcli subprocess
// metrics.
//
// Usage:
//
//	s.AddTool(myTool, common.InstrumentedToolHandlerWithService("gmail_send", "gmail", "send", sc, handler))
func InstrumentedToolHandlerWithService(toolName, serviceName, operation string, sc *server.ServerContext, handler toolHandler) toolHandler {
	return instrumented(toolName, serviceName, operation, sc, handler)
}

func instrumented(toolName, serviceName, operation string, sc *server.ServerContext, handler toolHandler) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		// Metrics and audit logger may be nil if instrumentation is off
		metrics := sc.Metrics()
		auditLogger := sc.AuditLogger()

		if metrics == nil && auditLogger == nil {
			return handler(ctx, request)
		}

		backend := sc.Backend()
		account := GetAccountFromArgs(sc, request.GetArguments())

		spanAttrs := instrumentation.NewSpanAttributeBuilder().
			WithTool(toolName).
			WithBackend(backend).
			WithReadOnly(sc.ReadOnly())
		if serviceName != "" {
			spanAttrs.WithService(serviceName).WithOperation(operation)
		}
		ctx, span := instrumentation.StartToolSpan(ctx, toolName, spanAttrs.Build()...)
		defer span.End()

		// The gogcli backend gets its subprocess span from the runner; the
		// api backend gets a matching client span here.
		if serviceName != "" && backend == config.BackendAPI {
			apiCtx, apiSpan := instrumentation.StartGoogleAPISpan(ctx, serviceName, operation)
			ctx = apiCtx
			defer apiSpan.End()
		}

		start := time.Now()
		invocation := instrumentation.NewToolInvocation(toolName).
			WithSpanContext(ctx).
			WithBackend(backend)
		if serviceName != "" {
			invocation.WithService(serviceName, operation)
		}
		if account != "" {
			invocation.WithAccount(account)
		}

		result, err := handler(ctx, request)
		duration := time.Since(start)

		status := instrumentation.StatusSuccess
		if err != nil || (result != nil && result.IsError) {
			status = instrumentation.StatusError
			if err != nil {
				invocation.CompleteWithError(err)
				instrumentation.SetSpanError(span, err)
			} else {
				// Domain failure reported as an error result, no Go error
				invocation.Complete(false, nil)
			}
		} else {
			invocation.CompleteSuccess()
			instrumentation.SetSpanSuccess(span)
		}

		if metrics != nil {
			metrics.RecordToolInvocationWithAccount(ctx, toolName, backend, status, account, duration)

			if serviceName != "" {
				switch backend {
				case config.BackendAPI:
					metrics.RecordGoogleAPIOperation(ctx, serviceName, operation, status, duration)
				default:
					metrics.RecordCLIInvocation(ctx, serviceName, status, duration)
				}
			}
		}

		if auditLogger != nil {
			auditLogger.LogToolInvocation(invocation)
		}

		return result, err
	}
}
