package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mcptools/workspace-mcp/internal/instrumentation"
)

// SSEServerConfig holds configuration for the SSE transport server.
type SSEServerConfig struct {
	// Port is the TCP port to listen on.
	Port int

	// BaseURL is the externally visible base URL. Defaults to
	// http://localhost:<port>.
	BaseURL string

	// Metrics records HTTP request metrics when set.
	Metrics *instrumentation.Metrics

	Logger *slog.Logger
}

// SSEServer serves the MCP protocol over SSE. The MCP endpoints (/sse for
// the event stream, /message for client-to-server calls) share a mux with
// the health check endpoints.
type SSEServer struct {
	httpServer *http.Server
	addr       string
	logger     *slog.Logger
}

// NewSSEServer creates an SSE transport server for the given MCP server.
func NewSSEServer(mcpSrv *mcpserver.MCPServer, health *HealthChecker, cfg SSEServerConfig) *SSEServer {
	if cfg.Port == 0 {
		cfg.Port = 9001
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.Port)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	sse := mcpserver.NewSSEServer(mcpSrv,
		mcpserver.WithBaseURL(cfg.BaseURL),
		mcpserver.WithSSEEndpoint("/sse"),
		mcpserver.WithMessageEndpoint("/message"),
	)

	mux := http.NewServeMux()
	mux.Handle("/sse", instrumentHandler(sse, "/sse", cfg.Metrics, true))
	mux.Handle("/message", instrumentHandler(sse, "/message", cfg.Metrics, false))
	if health != nil {
		health.RegisterHealthEndpoints(mux)
	}

	return &SSEServer{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: mux,
			// No WriteTimeout: the SSE stream is long-lived.
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		addr:   fmt.Sprintf(":%d", cfg.Port),
		logger: cfg.Logger,
	}
}

// Start starts the SSE server in a blocking manner.
// Call this in a goroutine if you need non-blocking operation.
func (s *SSEServer) Start() error {
	s.logger.Info("starting SSE server", "addr", s.addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the SSE server.
func (s *SSEServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down SSE server")
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the listen address.
func (s *SSEServer) Addr() string {
	return s.addr
}

// instrumentHandler wraps a handler with HTTP metrics. The session flag
// tracks the active_sessions gauge for the long-lived stream endpoint.
func instrumentHandler(next http.Handler, path string, m *instrumentation.Metrics, session bool) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if session {
			m.IncrementActiveSessions(r.Context())
			defer m.DecrementActiveSessions(r.Context())
		}

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		m.RecordHTTPRequest(r.Context(), r.Method, path, sw.status, time.Since(start))
	})
}

// statusWriter captures the response status code for metrics.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Flush forwards to the underlying writer, required for SSE streaming.
func (w *statusWriter) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
