// Package drive_tools provides MCP (Model Context Protocol) tools for
// interacting with Google Drive.
//
// Read tools (always registered):
//   - drive_list_files: List or search files
//
// Write tools (registered only when the server runs with --yolo):
//   - drive_create_file: Create a file with optional text content
//   - drive_create_folder: Create a folder
//   - drive_share_file: Grant a user access to a file
//   - drive_delete_file: Delete a file
package drive_tools
