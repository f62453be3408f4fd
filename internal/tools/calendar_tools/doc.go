// Package calendar_tools provides MCP (Model Context Protocol) tools for
// interacting with Google Calendar.
//
// Read tools (always registered):
//   - calendar_list_events: List upcoming events within a time window
//
// Write tools (registered only when the server runs with --yolo):
//   - calendar_create_event: Create an event on the primary calendar
//   - calendar_update_event: Update an existing event
//   - calendar_delete_event: Delete an event
//
// On the api backend event times must be RFC 3339; the gogcli backend
// passes time strings through unchanged, so gogcli's natural language
// parsing ("tomorrow 3pm") also works there.
package calendar_tools
