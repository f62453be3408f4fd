// Package server provides the MCP server context, health checks, and the
// SSE and metrics HTTP servers for workspace-mcp.
//
// # Key Components
//
// ServerContext holds the shared state for tool handlers: the selected
// backend (gogcli subprocess or direct Google API), the gogcli runner, the
// default account, and lazily created per-account Google API clients.
//
// HealthChecker serves /healthz and /readyz. On the gogcli backend the
// readiness check verifies the binary is installed.
//
// SSEServer serves the MCP protocol over SSE on /sse and /message, with the
// health endpoints on the same port. MetricsServer exposes Prometheus
// metrics on a dedicated port.
package server
