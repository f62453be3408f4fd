// Package cmd implements the workspace-mcp command-line interface.
//
// The serve command starts the MCP server on stdio or HTTP/SSE, backed by
// either the gogcli binary or the Google REST APIs. Configuration comes
// from the environment and an optional .env file, with flags taking
// precedence over both.
package cmd
