package calendar_tools

import (
	"context"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/calendar"
	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/google"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/tools/common"
)

const defaultEventLimit = 10

// RegisterCalendarTools registers all Calendar tools with the MCP server.
// Read tools are always available; mutating tools require yolo mode.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listTool := mcp.NewTool("calendar_list_events",
		mcp.WithDescription("List upcoming calendar events within a time window"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("start",
			mcp.Description("Window start (RFC 3339, default: now)"),
		),
		mcp.WithString("end",
			mcp.Description("Window end (RFC 3339, default: 30 days out)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of events to return (default: 10)"),
		),
	)
	s.AddTool(listTool, common.InstrumentedToolHandlerWithService("calendar_list_events", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc)
		}))

	if sc.ReadOnly() {
		return nil
	}

	createTool := mcp.NewTool("calendar_create_event",
		mcp.WithDescription("Create a calendar event on the primary calendar"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Start time (RFC 3339, e.g. '2026-01-15T14:00:00Z')"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("End time (RFC 3339)"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("location",
			mcp.Description("Event location"),
		),
		mcp.WithString("attendees",
			mcp.Description("Comma-separated attendee email addresses"),
		),
	)
	s.AddTool(createTool, common.InstrumentedToolHandlerWithService("calendar_create_event", instrumentation.ServiceCalendar, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		}))

	updateTool := mcp.NewTool("calendar_update_event",
		mcp.WithDescription("Update an existing calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("title",
			mcp.Description("New event title"),
		),
		mcp.WithString("start",
			mcp.Description("New start time (RFC 3339)"),
		),
		mcp.WithString("end",
			mcp.Description("New end time (RFC 3339)"),
		),
		mcp.WithString("description",
			mcp.Description("New event description"),
		),
		mcp.WithString("location",
			mcp.Description("New event location"),
		),
	)
	s.AddTool(updateTool, common.InstrumentedToolHandlerWithService("calendar_update_event", instrumentation.ServiceCalendar, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateEvent(ctx, request, sc)
		}))

	deleteTool := mcp.NewTool("calendar_delete_event",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("event_id",
			mcp.Required(),
			mcp.Description("The ID of the event to delete"),
		),
	)
	s.AddTool(deleteTool, common.InstrumentedToolHandlerWithService("calendar_delete_event", instrumentation.ServiceCalendar, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteEvent(ctx, request, sc)
		}))

	return nil
}

func calendarClient(sc *server.ServerContext, account string) (*calendar.Client, *mcp.CallToolResult) {
	client := sc.CalendarClientForAccount(account)
	if client == nil {
		return nil, common.NoTokenError(account, google.AuthInstructions(account))
	}
	return client, nil
}

// splitAttendees turns a comma-separated attendee list into a slice,
// dropping empty entries.
func splitAttendees(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	title := common.StringArg(args, "title")
	if title == "" {
		return common.MissingArg("title"), nil
	}
	start := common.StringArg(args, "start")
	if start == "" {
		return common.MissingArg("start"), nil
	}
	end := common.StringArg(args, "end")
	if end == "" {
		return common.MissingArg("end"), nil
	}
	description := common.StringArg(args, "description")
	location := common.StringArg(args, "location")
	attendees := common.StringArg(args, "attendees")
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := calendarClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		startTime, err := calendar.ParseEventTime(start)
		if err != nil {
			return common.Errorf("invalid start: %v", err), nil
		}
		endTime, err := calendar.ParseEventTime(end)
		if err != nil {
			return common.Errorf("invalid end: %v", err), nil
		}
		event, err := client.CreateEvent(calendar.EventInput{
			Summary:     title,
			Description: description,
			Location:    location,
			Start:       startTime,
			End:         endTime,
			Attendees:   splitAttendees(attendees),
		})
		if err != nil {
			return common.Errorf("failed to create event: %v", err), nil
		}
		return common.SuccessData(event), nil
	}

	res := sc.Runner().Run(ctx, gogcli.CalendarCreate(title, start, end, gogcli.CalendarEventFields{
		Description: description,
		Location:    location,
		Attendees:   attendees,
	}), account)
	return common.RunnerResult(res), nil
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	start := common.StringArg(args, "start")
	end := common.StringArg(args, "end")
	limit := common.IntArg(args, "limit", defaultEventLimit)
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := calendarClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		var timeMin, timeMax time.Time
		if start != "" {
			var err error
			if timeMin, err = calendar.ParseEventTime(start); err != nil {
				return common.Errorf("invalid start: %v", err), nil
			}
		}
		if end != "" {
			var err error
			if timeMax, err = calendar.ParseEventTime(end); err != nil {
				return common.Errorf("invalid end: %v", err), nil
			}
		}
		events, err := client.ListEvents(timeMin, timeMax, limit)
		if err != nil {
			return common.Errorf("failed to list events: %v", err), nil
		}
		return common.SuccessData(events), nil
	}

	res := sc.Runner().Run(ctx, gogcli.CalendarList(start, end, int(limit)), account)
	return common.RunnerResult(res), nil
}

func handleUpdateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	eventID := common.StringArg(args, "event_id")
	if eventID == "" {
		return common.MissingArg("event_id"), nil
	}
	title := common.StringArg(args, "title")
	start := common.StringArg(args, "start")
	end := common.StringArg(args, "end")
	description := common.StringArg(args, "description")
	location := common.StringArg(args, "location")
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := calendarClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		input := calendar.EventInput{
			Summary:     title,
			Description: description,
			Location:    location,
		}
		if start != "" {
			t, err := calendar.ParseEventTime(start)
			if err != nil {
				return common.Errorf("invalid start: %v", err), nil
			}
			input.Start = t
		}
		if end != "" {
			t, err := calendar.ParseEventTime(end)
			if err != nil {
				return common.Errorf("invalid end: %v", err), nil
			}
			input.End = t
		}
		event, err := client.UpdateEvent(eventID, input)
		if err != nil {
			return common.Errorf("failed to update event: %v", err), nil
		}
		return common.SuccessData(event), nil
	}

	res := sc.Runner().Run(ctx, gogcli.CalendarUpdate(eventID, gogcli.CalendarEventFields{
		Title:       title,
		Start:       start,
		End:         end,
		Description: description,
		Location:    location,
	}), account)
	return common.RunnerResult(res), nil
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	eventID := common.StringArg(args, "event_id")
	if eventID == "" {
		return common.MissingArg("event_id"), nil
	}
	account := common.GetAccountFromArgs(sc, args)

	if sc.Backend() == config.BackendAPI {
		client, errResult := calendarClient(sc, account)
		if errResult != nil {
			return errResult, nil
		}
		if err := client.DeleteEvent(eventID); err != nil {
			return common.Errorf("failed to delete event: %v", err), nil
		}
		return common.SuccessData(map[string]string{"event_id": eventID}), nil
	}

	res := sc.Runner().Run(ctx, gogcli.CalendarDelete(eventID), account)
	return common.RunnerResult(res), nil
}
