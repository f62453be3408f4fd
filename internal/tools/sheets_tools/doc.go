// Package sheets_tools provides MCP (Model Context Protocol) tools for
// interacting with Google Sheets.
//
// Read tools (always registered):
//   - sheets_read: Read cell values from a range
//
// Write tools (registered only when the server runs with --yolo):
//   - sheets_create: Create a spreadsheet, optionally with initial data
//   - sheets_write: Overwrite cell values in a range
//   - sheets_append: Append rows after a range
//   - sheets_delete: Delete a spreadsheet
//
// Spreadsheet IDs may be given as raw IDs or full Google Sheets URLs.
// Cell data is accepted as a JSON 2D array or as CSV text.
package sheets_tools
