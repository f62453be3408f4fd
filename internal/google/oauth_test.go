package google

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"valid default", "default", false},
		{"valid work", "work", false},
		{"valid with hyphen", "work-email", false},
		{"valid with underscore", "personal_email", false},
		{"valid alphanumeric", "account123", false},
		{"empty", "", true},
		{"with spaces", "my account", true},
		{"with special chars", "account@work", true},
		{"with slash", "work/personal", true},
		{"with dot", "work.email", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAccountName(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAccountName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenFileForAccount(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    string
	}{
		{"default account", "default", "default.token.json"},
		{"work account", "work", "work.token.json"},
		{"personal account", "personal", "personal.token.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenFileForAccount(tt.account)
			if filepath.Base(got) != tt.want {
				t.Errorf("tokenFileForAccount() = %v, want base %v", got, tt.want)
			}
			if filepath.Base(filepath.Dir(got)) != cacheSubdir {
				t.Errorf("tokenFileForAccount() = %v, want parent dir %v", got, cacheSubdir)
			}
		})
	}
}

func TestGetOAuthConfigMissingCredentials(t *testing.T) {
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "")

	if _, err := GetOAuthConfig(); err == nil {
		t.Fatal("expected error without client credentials")
	}
}

func TestGetOAuthConfig(t *testing.T) {
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")

	conf, err := GetOAuthConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conf.ClientID != "client-id" {
		t.Errorf("ClientID = %q", conf.ClientID)
	}
	if len(conf.Scopes) == 0 {
		t.Error("expected scopes to be set")
	}
}

func TestHasTokenForAccount(t *testing.T) {
	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)

	if HasTokenForAccount("") {
		t.Error("expected false for empty account")
	}
	if HasTokenForAccount("invalid account") {
		t.Error("expected false for invalid account name")
	}
	if HasTokenForAccount("work") {
		t.Error("expected false before token is written")
	}

	tokenFile := filepath.Join(cacheDir, cacheSubdir, "work.token.json")
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(&oauth2.Token{AccessToken: "x", RefreshToken: "y"})
	if err := os.WriteFile(tokenFile, data, 0600); err != nil {
		t.Fatal(err)
	}

	if !HasTokenForAccount("work") {
		t.Error("expected true after token is written")
	}
}

func TestGetTokenSourceForAccountMissingToken(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")

	_, err := GetTokenSourceForAccount(context.Background(), "missing")
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), "no stored token") {
		t.Errorf("error = %v", err)
	}
}

func TestGetTokenSourceForAccountInvalidFile(t *testing.T) {
	cacheDir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cacheDir)
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")

	tokenFile := filepath.Join(cacheDir, cacheSubdir, "work.token.json")
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(tokenFile, []byte("not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := GetTokenSourceForAccount(context.Background(), "work")
	if err == nil {
		t.Fatal("expected error for corrupt token file")
	}
	if !strings.Contains(err.Error(), "invalid token file") {
		t.Errorf("error = %v", err)
	}
}

func TestGetAuthURLForAccount(t *testing.T) {
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")

	url, err := GetAuthURLForAccount("work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(url, "client-id") {
		t.Errorf("auth URL %q missing client id", url)
	}
	if !strings.Contains(url, "state=work") {
		t.Errorf("auth URL %q missing account state", url)
	}
}

func TestAuthInstructions(t *testing.T) {
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")

	msg := AuthInstructions("work")
	if !strings.Contains(msg, "work") {
		t.Errorf("instructions %q should mention the account", msg)
	}
	if !strings.Contains(msg, "google_save_auth_code") {
		t.Errorf("instructions %q should point at the auth code tool", msg)
	}
	if !strings.Contains(msg, "https://") {
		t.Errorf("instructions %q should contain the consent URL", msg)
	}
}

func TestSaveTokenForAccountInvalidAccount(t *testing.T) {
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")

	if err := SaveTokenForAccount(context.Background(), "", "code"); err == nil {
		t.Fatal("expected error for empty account")
	}
	if err := SaveTokenForAccount(context.Background(), "../evil", "code"); err == nil {
		t.Fatal("expected error for path traversal in account name")
	}
}
