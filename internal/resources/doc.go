// Package resources registers MCP resources describing the running
// server: workspace://info with the backend and exposed services, and
// workspace://gogcli-version with the output of gogcli --version.
package resources
