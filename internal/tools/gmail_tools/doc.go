// Package gmail_tools provides MCP (Model Context Protocol) tools for
// interacting with Gmail.
//
// Read tools (always registered):
//   - gmail_list_emails: List recent inbox messages
//   - gmail_search_emails: Search messages with a Gmail query
//   - gmail_read_email: Read the full content of a message
//
// Write tools (registered only when the server runs with --yolo):
//   - gmail_send_email: Send an email (plain text or HTML)
//   - gmail_label_email: Add and/or remove labels on a message
//   - gmail_archive_email: Remove a message from the inbox
//   - gmail_delete_email: Move a message to the trash
//
// Every tool accepts an optional account argument. On the gogcli backend
// the tool shells out to the gogcli binary; on the api backend it calls
// the Gmail REST API with a per-account OAuth client from the server
// context.
package gmail_tools
