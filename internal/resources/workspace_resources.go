package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/server"
)

// services lists the Workspace services the tool surface covers.
var services = []string{"gmail", "sheets", "docs", "slides", "calendar", "drive", "maps"}

// RegisterWorkspaceResources registers the server information resources.
func RegisterWorkspaceResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	infoResource := mcp.NewResource(
		"workspace://info",
		"Server Information",
		mcp.WithResourceDescription("Backend mode, default account, and exposed Google Workspace services"),
		mcp.WithMIMEType("application/json"),
	)
	s.AddResource(infoResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleInfo(ctx, request, sc)
	})

	versionResource := mcp.NewResource(
		"workspace://gogcli-version",
		"gogcli Version",
		mcp.WithResourceDescription("Version of the gogcli binary used by the gogcli backend"),
		mcp.WithMIMEType("text/plain"),
	)
	s.AddResource(versionResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleGogcliVersion(ctx, request, sc)
	})

	return nil
}

func handleInfo(_ context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	info := map[string]interface{}{
		"name":            "workspace-mcp",
		"backend":         sc.Backend(),
		"default_account": sc.DefaultAccount(),
		"read_only":       sc.ReadOnly(),
		"services":        services,
	}
	if sc.Backend() == config.BackendGogcli && sc.Runner() != nil {
		info["gogcli_bin"] = sc.Runner().Bin()
		info["gogcli_available"] = sc.Runner().Available()
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal server info: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

func handleGogcliVersion(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	text := "gogcli not available"
	if sc.Runner() != nil && sc.Runner().Available() {
		res := sc.Runner().RunVersion(ctx)
		if res.Success {
			text = strings.TrimSpace(res.Output)
		} else {
			text = fmt.Sprintf("failed to run gogcli --version: %s", res.Error)
		}
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		},
	}, nil
}
