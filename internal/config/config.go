package config

import (
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

// Backend selects how tool calls reach Google Workspace.
const (
	BackendGogcli = "gogcli"
	BackendAPI    = "api"
)

// Defaults applied when neither flags, environment, nor .env provide a value.
const (
	DefaultGogcliBin      = "gogcli"
	DefaultBackend        = BackendGogcli
	DefaultPort           = 9001
	DefaultTimeoutSeconds = 60
	DefaultMetricsAddr    = ":9090"
)

// Config holds the runtime configuration for the server. Values are resolved
// from the environment and an optional .env file in the working directory;
// command-line flags override both.
type Config struct {
	// GogcliBin is the path or name of the gogcli binary.
	GogcliBin string

	// DefaultAccount is the Google account used when a tool call does not
	// specify one.
	DefaultAccount string

	// Backend is either "gogcli" or "api".
	Backend string

	// Port is the SSE listen port.
	Port int

	// Timeout bounds each gogcli invocation.
	Timeout time.Duration

	// NoKeyringAutomation disables the pseudo-terminal passphrase shim.
	NoKeyringAutomation bool

	// OAuthClientID and OAuthClientSecret configure the api backend.
	OAuthClientID     string
	OAuthClientSecret string

	// MetricsAddr is the dedicated Prometheus listener address.
	MetricsAddr    string
	MetricsEnabled bool
}

var (
	v    *viper.Viper
	once sync.Once
)

// Load resolves configuration from the environment. The first call reads an
// optional .env file from the working directory; later calls reuse the same
// viper instance so repeated loads are cheap.
func Load() *Config {
	once.Do(initViper)

	cfg := &Config{
		GogcliBin:           v.GetString("GOGCLI_BIN"),
		DefaultAccount:      v.GetString("GOGCLI_ACCOUNT"),
		Backend:             strings.ToLower(v.GetString("WORKSPACE_MCP_BACKEND")),
		Port:                v.GetInt("WORKSPACE_MCP_PORT"),
		Timeout:             time.Duration(v.GetInt("GOGCLI_TIMEOUT_SECONDS")) * time.Second,
		NoKeyringAutomation: v.GetBool("GOGCLI_NO_KEYRING_AUTOMATION"),
		OAuthClientID:       v.GetString("GOOGLE_OAUTH_CLIENT_ID"),
		OAuthClientSecret:   v.GetString("GOOGLE_OAUTH_CLIENT_SECRET"),
		MetricsAddr:         v.GetString("METRICS_ADDR"),
		MetricsEnabled:      v.GetBool("METRICS_ENABLED"),
	}

	if cfg.Backend != BackendAPI {
		cfg.Backend = BackendGogcli
	}

	return cfg
}

func initViper() {
	v = viper.New()

	v.SetDefault("GOGCLI_BIN", DefaultGogcliBin)
	v.SetDefault("GOGCLI_ACCOUNT", "")
	v.SetDefault("WORKSPACE_MCP_BACKEND", DefaultBackend)
	v.SetDefault("WORKSPACE_MCP_PORT", DefaultPort)
	v.SetDefault("GOGCLI_TIMEOUT_SECONDS", DefaultTimeoutSeconds)
	v.SetDefault("GOGCLI_NO_KEYRING_AUTOMATION", false)
	v.SetDefault("METRICS_ADDR", DefaultMetricsAddr)
	v.SetDefault("METRICS_ENABLED", true)

	// Optional .env in the working directory. Real environment variables
	// take precedence over file values.
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
}

// Reset discards the cached viper instance. Tests use it to re-read the
// environment between cases.
func Reset() {
	v = nil
	once = sync.Once{}
}
