package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/daemon"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/logging"
	"github.com/mcptools/workspace-mcp/internal/resources"
	"github.com/mcptools/workspace-mcp/internal/server"
	"github.com/mcptools/workspace-mcp/internal/tools/calendar_tools"
	"github.com/mcptools/workspace-mcp/internal/tools/docs_tools"
	"github.com/mcptools/workspace-mcp/internal/tools/drive_tools"
	"github.com/mcptools/workspace-mcp/internal/tools/gmail_tools"
	"github.com/mcptools/workspace-mcp/internal/tools/google_tools"
	"github.com/mcptools/workspace-mcp/internal/tools/maps_tools"
	"github.com/mcptools/workspace-mcp/internal/tools/sheets_tools"
	"github.com/mcptools/workspace-mcp/internal/tools/slides_tools"
)

const (
	transportStdio = "stdio"
	transportSSE   = "sse"

	// metricsStartTimeout bounds how long serve waits for the metrics
	// listener to bind before giving up.
	metricsStartTimeout = 5 * time.Second
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server exposing Google Workspace tools.

By default the server speaks MCP over stdio and executes tool calls by
shelling out to the gogcli binary. Use --transport sse for an HTTP/SSE
listener, --backend api to call the Google REST APIs directly, and
--yolo to enable write tools (send, create, update, delete, share).

Configuration is read from the environment and an optional .env file in
the working directory; flags override both.`,
		RunE: runServe,
	}

	cmd.Flags().Bool("debug", false, "Enable debug logging")
	cmd.Flags().Bool("json-logs", false, "Log in JSON format instead of text")
	cmd.Flags().String("transport", transportStdio, "MCP transport: stdio or sse")
	cmd.Flags().Int("port", config.DefaultPort, "Listen port for the sse transport")
	cmd.Flags().String("base-url", "", "Externally reachable base URL for the sse transport")
	cmd.Flags().Bool("detach", false, "Run in the background (sse transport only)")
	cmd.Flags().String("backend", config.DefaultBackend, "Tool backend: gogcli or api")
	cmd.Flags().Bool("yolo", false, "Enable write tools (the server is read-only without it)")
	cmd.Flags().String("account", "", "Default Google account for tool calls")
	cmd.Flags().String("gogcli-bin", config.DefaultGogcliBin, "Path to the gogcli binary")
	cmd.Flags().Int("timeout", config.DefaultTimeoutSeconds, "Timeout in seconds for each gogcli invocation")
	cmd.Flags().Bool("metrics-enabled", true, "Serve Prometheus metrics (sse transport only)")
	cmd.Flags().String("metrics-addr", config.DefaultMetricsAddr, "Listen address for the metrics server")

	return cmd
}

// serveSettings is the fully resolved serve configuration: environment and
// .env via config.Load, overridden by any flag the user set explicitly.
type serveSettings struct {
	cfg       *config.Config
	transport string
	baseURL   string
	detach    bool
	yolo      bool
	debug     bool
	jsonLogs  bool
}

func resolveServeSettings(cmd *cobra.Command) (*serveSettings, error) {
	cfg := config.Load()

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("account") {
		cfg.DefaultAccount, _ = flags.GetString("account")
	}
	if flags.Changed("gogcli-bin") {
		cfg.GogcliBin, _ = flags.GetString("gogcli-bin")
	}
	if flags.Changed("timeout") {
		seconds, _ := flags.GetInt("timeout")
		cfg.Timeout = time.Duration(seconds) * time.Second
	}
	if flags.Changed("metrics-enabled") {
		cfg.MetricsEnabled, _ = flags.GetBool("metrics-enabled")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}

	if cfg.Backend != config.BackendGogcli && cfg.Backend != config.BackendAPI {
		return nil, fmt.Errorf("invalid backend %q, must be %q or %q", cfg.Backend, config.BackendGogcli, config.BackendAPI)
	}

	transport, _ := flags.GetString("transport")
	if transport != transportStdio && transport != transportSSE {
		return nil, fmt.Errorf("invalid transport %q, must be %q or %q", transport, transportStdio, transportSSE)
	}

	settings := &serveSettings{cfg: cfg, transport: transport}
	settings.baseURL, _ = flags.GetString("base-url")
	settings.detach, _ = flags.GetBool("detach")
	settings.yolo, _ = flags.GetBool("yolo")
	settings.debug, _ = flags.GetBool("debug")
	settings.jsonLogs, _ = flags.GetBool("json-logs")

	if settings.detach && transport != transportSSE {
		return nil, fmt.Errorf("--detach requires --transport sse")
	}

	return settings, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	settings, err := resolveServeSettings(cmd)
	if err != nil {
		return err
	}

	// Detach before any listener is bound. The re-executed child sees the
	// detach marker in its environment and falls through to serve.
	if settings.detach && !daemon.IsDetachedChild() {
		pid, err := daemon.Detach()
		if err != nil {
			return fmt.Errorf("failed to detach: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "workspace-mcp running in background, pid %d\n", pid)
		return nil
	}

	logger := logging.Setup(settings.debug, settings.jsonLogs)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	instCfg := instrumentation.DefaultConfig()
	instCfg.ServiceVersion = version
	if err := instCfg.Validate(); err != nil {
		return fmt.Errorf("invalid instrumentation config: %w", err)
	}

	provider, err := instrumentation.NewProvider(ctx, instCfg)
	if err != nil {
		return fmt.Errorf("failed to initialize instrumentation: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("instrumentation shutdown failed", logging.Err(err))
		}
	}()

	cfg := settings.cfg
	var runner *gogcli.Runner
	if cfg.Backend == config.BackendGogcli {
		runner = gogcli.NewRunner(cfg.GogcliBin, cfg.DefaultAccount, cfg.Timeout, !cfg.NoKeyringAutomation, logger)
		if !runner.Available() {
			logger.Warn("gogcli binary not found, tool calls will fail until it is installed",
				"bin", cfg.GogcliBin)
		}
	}

	sc, err := server.NewServerContext(ctx, server.Options{
		Backend:        cfg.Backend,
		Runner:         runner,
		DefaultAccount: cfg.DefaultAccount,
		ReadOnly:       !settings.yolo,
		Logger:         logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}
	defer func() { _ = sc.Shutdown() }()

	sc.SetMetrics(provider.Metrics())
	if instCfg.AuditLogging.Enabled {
		sc.SetAuditLogger(instrumentation.NewAuditLoggerWithConfig(logger, instCfg.AuditLogging))
	}

	mcpSrv := mcpserver.NewMCPServer(
		"workspace-mcp",
		version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false),
	)

	if err := registerAllTools(mcpSrv, sc); err != nil {
		return err
	}

	logger.Info("starting workspace-mcp",
		"version", version,
		"transport", settings.transport,
		logging.Backend(cfg.Backend),
		"read_only", sc.ReadOnly(),
	)

	if settings.transport == transportSSE {
		return runSSEServer(ctx, mcpSrv, sc, provider, settings, logger)
	}
	return runStdioServer(ctx, mcpSrv, logger)
}

type toolRegistration struct {
	name     string
	register func() error
}

// registerAllTools wires every tool and resource package into the MCP server.
// Write tools are filtered inside each package based on the server context.
func registerAllTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	registrations := []toolRegistration{
		{"gmail", func() error { return gmail_tools.RegisterGmailTools(s, sc) }},
		{"sheets", func() error { return sheets_tools.RegisterSheetsTools(s, sc) }},
		{"docs", func() error { return docs_tools.RegisterDocsTools(s, sc) }},
		{"slides", func() error { return slides_tools.RegisterSlidesTools(s, sc) }},
		{"calendar", func() error { return calendar_tools.RegisterCalendarTools(s, sc) }},
		{"drive", func() error { return drive_tools.RegisterDriveTools(s, sc) }},
		{"maps", func() error { return maps_tools.RegisterMapsTools(s, sc) }},
		{"google auth", func() error { return google_tools.RegisterGoogleTools(s, sc) }},
		{"workspace resources", func() error { return resources.RegisterWorkspaceResources(s, sc) }},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s tools: %w", reg.name, err)
		}
	}
	return nil
}

func runStdioServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, logger *slog.Logger) error {
	serverDone := make(chan error, 1)
	go func() {
		serverDone <- mcpserver.ServeStdio(mcpSrv)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down stdio server")
		return nil
	case err := <-serverDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio server error: %w", err)
		}
		return nil
	}
}

func runSSEServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, sc *server.ServerContext, provider *instrumentation.Provider, settings *serveSettings, logger *slog.Logger) error {
	cfg := settings.cfg

	var metricsSrv *server.MetricsServer
	if cfg.MetricsEnabled && provider.Enabled() {
		ms, err := server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    cfg.MetricsAddr,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			metricsErr <- ms.StartWithReadySignal(metricsReady)
		}()

		select {
		case <-metricsReady:
			metricsSrv = ms
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(metricsStartTimeout):
			return fmt.Errorf("metrics server did not start within %s", metricsStartTimeout)
		}
	}

	health := server.NewHealthChecker(sc)
	sseSrv := server.NewSSEServer(mcpSrv, health, server.SSEServerConfig{
		Port:    cfg.Port,
		BaseURL: settings.baseURL,
		Metrics: sc.Metrics(),
		Logger:  logger,
	})

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- sseSrv.Start()
	}()
	health.SetReady(true)

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()

		health.SetReady(false)
		if err := sseSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("SSE server shutdown failed", logging.Err(err))
		}
		if metricsSrv != nil {
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
				logger.Error("metrics server shutdown failed", logging.Err(err))
			}
		}
	}

	select {
	case <-ctx.Done():
		logger.Info("shutting down SSE server")
		shutdown()
		return nil
	case err := <-serverDone:
		if metricsSrv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
			_ = metricsSrv.Shutdown(shutdownCtx)
			cancel()
		}
		if err != nil {
			return fmt.Errorf("SSE server error: %w", err)
		}
		return nil
	}
}
