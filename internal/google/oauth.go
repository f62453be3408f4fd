package google

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

// cacheSubdir is the directory under the user cache dir holding token files.
const cacheSubdir = "workspace-mcp"

// GetOAuthConfig returns the OAuth2 configuration for the api backend.
// Client credentials come from the environment; the out-of-band redirect is
// used because tokens are pasted back by hand.
func GetOAuthConfig() (*oauth2.Config, error) {
	clientID := os.Getenv("GOOGLE_OAUTH_CLIENT_ID")
	clientSecret := os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("GOOGLE_OAUTH_CLIENT_ID and GOOGLE_OAUTH_CLIENT_SECRET must be set for the api backend")
	}

	const oob = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     googleoauth.Endpoint,
		RedirectURL:  oob,
		Scopes:       DefaultOAuthScopes,
	}, nil
}

// validateAccountName rejects account names that cannot safely become part
// of a file name.
func validateAccountName(account string) error {
	if account == "" {
		return fmt.Errorf("account name must not be empty")
	}
	for _, r := range account {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			continue
		}
		return fmt.Errorf("account name %q contains invalid character %q", account, r)
	}
	return nil
}

// HasTokenForAccount checks whether a stored token exists for the account.
func HasTokenForAccount(account string) bool {
	if validateAccountName(account) != nil {
		return false
	}
	_, err := os.Stat(tokenFileForAccount(account))
	return err == nil
}

// GetAuthURLForAccount returns the OAuth consent URL for the account.
func GetAuthURLForAccount(account string) (string, error) {
	conf, err := GetOAuthConfig()
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL(account, oauth2.AccessTypeOffline), nil
}

// SaveTokenForAccount exchanges an authorization code and stores the token
// as JSON under the user cache dir, readable by the owner only.
func SaveTokenForAccount(ctx context.Context, account, authCode string) error {
	if err := validateAccountName(account); err != nil {
		return err
	}

	conf, err := GetOAuthConfig()
	if err != nil {
		return err
	}

	token, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	tokenFile := tokenFileForAccount(account)
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(tokenFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// GetTokenSourceForAccount returns an auto-refreshing token source for the
// account's stored token.
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	if err := validateAccountName(account); err != nil {
		return nil, err
	}

	conf, err := GetOAuthConfig()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tokenFileForAccount(account))
	if err != nil {
		return nil, fmt.Errorf("no stored token for account %q: %w", account, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("invalid token file for account %q: %w", account, err)
	}

	return conf.TokenSource(ctx, &token), nil
}

// GetHTTPClientForAccount returns an HTTP client with OAuth2 authentication
// for the account. The client is configured to use HTTP/1.1 to avoid HTTP/2
// protocol errors with some Google endpoints.
func GetHTTPClientForAccount(ctx context.Context, account string) (*http.Client, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	return client, nil
}

// AuthInstructions returns the message shown when a tool call needs a token
// that does not exist yet. It includes the consent URL when credentials are
// configured.
func AuthInstructions(account string) string {
	url, err := GetAuthURLForAccount(account)
	if err != nil {
		return fmt.Sprintf("no Google token for account %q and OAuth credentials are not configured: %v", account, err)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "no Google token for account %q. ", account)
	fmt.Fprintf(&b, "Open the following URL, grant access, then call google_save_auth_code with the resulting code:\n%s", url)
	return b.String()
}

func tokenFileForAccount(account string) string {
	return filepath.Join(userCacheDir(), cacheSubdir, account+".token.json")
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		return os.TempDir()
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
