package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcptools/workspace-mcp/internal/calendar"
	"github.com/mcptools/workspace-mcp/internal/config"
	"github.com/mcptools/workspace-mcp/internal/docs"
	"github.com/mcptools/workspace-mcp/internal/drive"
	"github.com/mcptools/workspace-mcp/internal/gmail"
	"github.com/mcptools/workspace-mcp/internal/gogcli"
	"github.com/mcptools/workspace-mcp/internal/instrumentation"
	"github.com/mcptools/workspace-mcp/internal/sheets"
	"github.com/mcptools/workspace-mcp/internal/slides"
)

// Options configures a ServerContext.
type Options struct {
	// Backend selects how tools execute: config.BackendGogcli or config.BackendAPI.
	Backend string

	// Runner executes gogcli subprocesses. Required for the gogcli backend.
	Runner *gogcli.Runner

	// DefaultAccount is used when a tool call omits the account argument.
	DefaultAccount string

	// ReadOnly disables write tools when true.
	ReadOnly bool

	Logger *slog.Logger
}

// ServerContext holds the shared state for the MCP server: the selected
// backend, the gogcli runner, and per-account Google API clients.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	backend        string
	runner         *gogcli.Runner
	defaultAccount string
	readOnly       bool
	logger         *slog.Logger

	// Lazily created per-account API clients, keyed by account name
	gmailClients    map[string]*gmail.Client
	sheetsClients   map[string]*sheets.Client
	docsClients     map[string]*docs.Client
	slidesClients   map[string]*slides.Client
	calendarClients map[string]*calendar.Client
	driveClients    map[string]*drive.Client

	metrics *instrumentation.Metrics
	audit   *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context, opts Options) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	if opts.Backend == "" {
		opts.Backend = config.BackendGogcli
	}
	if opts.DefaultAccount == "" {
		opts.DefaultAccount = "default"
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &ServerContext{
		ctx:             shutdownCtx,
		cancel:          cancel,
		backend:         opts.Backend,
		runner:          opts.Runner,
		defaultAccount:  opts.DefaultAccount,
		readOnly:        opts.ReadOnly,
		logger:          opts.Logger,
		gmailClients:    make(map[string]*gmail.Client),
		sheetsClients:   make(map[string]*sheets.Client),
		docsClients:     make(map[string]*docs.Client),
		slidesClients:   make(map[string]*slides.Client),
		calendarClients: make(map[string]*calendar.Client),
		driveClients:    make(map[string]*drive.Client),
	}, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Backend returns the configured backend (gogcli or api).
func (sc *ServerContext) Backend() string {
	return sc.backend
}

// Runner returns the gogcli runner. Nil when running on the api backend.
func (sc *ServerContext) Runner() *gogcli.Runner {
	return sc.runner
}

// DefaultAccount returns the account used when a tool call omits the
// account argument.
func (sc *ServerContext) DefaultAccount() string {
	return sc.defaultAccount
}

// ResolveAccount maps a tool-supplied account argument to an account name,
// falling back to the default account when empty.
func (sc *ServerContext) ResolveAccount(account string) string {
	if account == "" {
		return sc.defaultAccount
	}
	return account
}

// ReadOnly reports whether write tools are disabled.
func (sc *ServerContext) ReadOnly() bool {
	return sc.readOnly
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// SetMetrics sets the metrics recorder used for tool instrumentation.
func (sc *ServerContext) SetMetrics(m *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = m
}

// Metrics returns the metrics recorder, or nil if instrumentation is disabled.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger for tool invocations.
func (sc *ServerContext) SetAuditLogger(al *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.audit = al
}

// AuditLogger returns the audit logger, or nil if audit logging is disabled.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.audit
}

// GmailClientForAccount returns the Gmail client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) GmailClientForAccount(account string) *gmail.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.gmailClients[account]; ok {
		return client
	}

	if !gmail.HasTokenForAccount(account) {
		return nil
	}

	client, err := gmail.NewClientForAccount(sc.ctx, account)
	if err != nil {
		sc.logger.Warn("failed to create Gmail client", "account", account, "error", err)
		return nil
	}

	sc.gmailClients[account] = client
	return client
}

// SheetsClientForAccount returns the Sheets client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) SheetsClientForAccount(account string) *sheets.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.sheetsClients[account]; ok {
		return client
	}

	if !sheets.HasTokenForAccount(account) {
		return nil
	}

	client, err := sheets.NewClientForAccount(sc.ctx, account)
	if err != nil {
		sc.logger.Warn("failed to create Sheets client", "account", account, "error", err)
		return nil
	}

	sc.sheetsClients[account] = client
	return client
}

// DocsClientForAccount returns the Docs client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) DocsClientForAccount(account string) *docs.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.docsClients[account]; ok {
		return client
	}

	if !docs.HasTokenForAccount(account) {
		return nil
	}

	client, err := docs.NewClientForAccount(sc.ctx, account)
	if err != nil {
		sc.logger.Warn("failed to create Docs client", "account", account, "error", err)
		return nil
	}

	sc.docsClients[account] = client
	return client
}

// SlidesClientForAccount returns the Slides client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) SlidesClientForAccount(account string) *slides.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.slidesClients[account]; ok {
		return client
	}

	if !slides.HasTokenForAccount(account) {
		return nil
	}

	client, err := slides.NewClientForAccount(sc.ctx, account)
	if err != nil {
		sc.logger.Warn("failed to create Slides client", "account", account, "error", err)
		return nil
	}

	sc.slidesClients[account] = client
	return client
}

// CalendarClientForAccount returns the Calendar client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) CalendarClientForAccount(account string) *calendar.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.calendarClients[account]; ok {
		return client
	}

	if !calendar.HasTokenForAccount(account) {
		return nil
	}

	client, err := calendar.NewClientForAccount(sc.ctx, account)
	if err != nil {
		sc.logger.Warn("failed to create Calendar client", "account", account, "error", err)
		return nil
	}

	sc.calendarClients[account] = client
	return client
}

// DriveClientForAccount returns the Drive client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) DriveClientForAccount(account string) *drive.Client {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.driveClients[account]; ok {
		return client
	}

	if !drive.HasTokenForAccount(account) {
		return nil
	}

	client, err := drive.NewClientForAccount(sc.ctx, account)
	if err != nil {
		sc.logger.Warn("failed to create Drive client", "account", account, "error", err)
		return nil
	}

	sc.driveClients[account] = client
	return client
}

// InvalidateClientsForAccount drops cached API clients for an account.
// Called after a new token is saved so clients pick up fresh credentials.
func (sc *ServerContext) InvalidateClientsForAccount(account string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	delete(sc.gmailClients, account)
	delete(sc.sheetsClients, account)
	delete(sc.docsClients, account)
	delete(sc.slidesClients, account)
	delete(sc.calendarClients, account)
	delete(sc.driveClients, account)
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
