// Package docs_tools provides MCP (Model Context Protocol) tools for
// interacting with Google Docs.
//
// Read tools (always registered):
//   - docs_read: Read a document as plain text
//
// Write tools (registered only when the server runs with --yolo):
//   - docs_create: Create a document, optionally with initial content
//   - docs_append: Append text to the end of a document
//   - docs_delete: Delete a document
//
// Document IDs may be given as raw IDs or full Google Docs URLs.
package docs_tools
