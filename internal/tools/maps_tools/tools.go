package maps_tools

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

const defaultZoom = 14

// RegisterMapsTools registers all Maps tools with the MCP server. Maps
// tools are read-only and do not depend on yolo mode.
func RegisterMapsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	geocodeTool := mcp.NewTool("maps_geocode",
		mcp.WithDescription("Geocode an address to coordinates"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("address",
			mcp.Required(),
			mcp.Description("Address to geocode"),
		),
	)
	s.AddTool(geocodeTool, common.InstrumentedToolHandlerWithService("maps_geocode", instrumentation.ServiceMaps, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGeocode(ctx, request, sc)
		}))

	distanceTool := mcp.NewTool("maps_distance",
		mcp.WithDescription("Compute travel distance between two places"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Starting address or place"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Destination address or place"),
		),
	)
	s.AddTool(distanceTool, common.InstrumentedToolHandlerWithService("maps_distance", instrumentation.ServiceMaps, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDistance(ctx, request, sc)
		}))

	routeTool := mcp.NewTool("maps_route",
		mcp.WithDescription("Get turn-by-turn directions between two places"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("origin",
			mcp.Required(),
			mcp.Description("Starting address or place"),
		),
		mcp.WithString("destination",
			mcp.Required(),
			mcp.Description("Destination address or place"),
		),
	)
	s.AddTool(routeTool, common.InstrumentedToolHandlerWithService("maps_route", instrumentation.ServiceMaps, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRoute(ctx, request, sc)
		}))

	staticTool := mcp.NewTool("maps_static_map",
		mcp.WithDescription("Fetch a static map image centered on a place"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("center",
			mcp.Required(),
			mcp.Description("Address or coordinates to center on"),
		),
		mcp.WithNumber("zoom",
			mcp.Description("Zoom level (default: 14)"),
		),
	)
	s.AddTool(staticTool, common.InstrumentedToolHandlerWithService("maps_static_map", instrumentation.ServiceMaps, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleStaticMap(ctx, request, sc)
		}))

	return nil
}

// requireGogcli rejects maps calls on the api backend.
func requireGogcli(sc *server.ServerContext) *mcp.CallToolResult {
	if sc.Backend() != config.BackendGogcli {
		return common.Errorf("maps tools require the gogcli backend")
	}
	return nil
}

func handleGeocode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	address := common.StringArg(args, "address")
	if address == "" {
		return common.MissingArg("address"), nil
	}
	if errResult := requireGogcli(sc); errResult != nil {
		return errResult, nil
	}
	account := common.GetAccountFromArgs(sc, args)

	res := sc.Runner().Run(ctx, gogcli.MapsGeocode(address), account)
	return common.RunnerResult(res), nil
}

func handleDistance(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	origin := common.StringArg(args, "origin")
	if origin == "" {
		return common.MissingArg("origin"), nil
	}
	destination := common.StringArg(args, "destination")
	if destination == "" {
		return common.MissingArg("destination"), nil
	}
	if errResult := requireGogcli(sc); errResult != nil {
		return errResult, nil
	}
	account := common.GetAccountFromArgs(sc, args)

	res := sc.Runner().Run(ctx, gogcli.MapsDistance(origin, destination), account)
	return common.RunnerResult(res), nil
}

func handleRoute(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	origin := common.StringArg(args, "origin")
	if origin == "" {
		return common.MissingArg("origin"), nil
	}
	destination := common.StringArg(args, "destination")
	if destination == "" {
		return common.MissingArg("destination"), nil
	}
	if errResult := requireGogcli(sc); errResult != nil {
		return errResult, nil
	}
	account := common.GetAccountFromArgs(sc, args)

	res := sc.Runner().Run(ctx, gogcli.MapsRoute(origin, destination), account)
	return common.RunnerResult(res), nil
}

func handleStaticMap(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	center := common.StringArg(args, "center")
	if center == "" {
		return common.MissingArg("center"), nil
	}
	zoom := common.IntArg(args, "zoom", defaultZoom)
	if errResult := requireGogcli(sc); errResult != nil {
		return errResult, nil
	}
	account := common.GetAccountFromArgs(sc, args)

	res := sc.Runner().Run(ctx, gogcli.MapsStatic(center, int(zoom)), account)
	return common.RunnerResult(res), nil
}
