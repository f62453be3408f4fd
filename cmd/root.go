package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "workspace-mcp",
	Short: "MCP server for Google Workspace",
	Long: `workspace-mcp exposes Google Workspace (Gmail, Sheets, Docs, Slides,
Calendar, Drive, and Maps) as tools over the Model Context Protocol.

Tool calls are served by one of two backends:

  gogcli  shell out to the gogcli command-line client (default)
  api     call the Google REST APIs directly with OAuth2 tokens

Run "workspace-mcp serve" to start the server on stdio, or
"workspace-mcp serve --transport sse" for the HTTP/SSE transport.`,
}

// SetVersion sets the version reported by the version command. Called from
// main with the value injected at build time.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the workspace-mcp version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
