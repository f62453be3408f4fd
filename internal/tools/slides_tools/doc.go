// Package slides_tools provides MCP (Model Context Protocol) tools for
// interacting with Google Slides.
//
// Read tools (always registered):
//   - slides_read: Read presentation metadata and slide text
//
// Write tools (registered only when the server runs with --yolo):
//   - slides_create: Create a presentation
//   - slides_delete: Delete a presentation
//
// Presentation IDs may be given as raw IDs or full Google Slides URLs.
package slides_tools
