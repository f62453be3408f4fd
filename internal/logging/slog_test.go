package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name       string
		debug      bool
		jsonFormat bool
	}{
		{"text info", false, false},
		{"text debug", true, false},
		{"json info", false, true},
		{"json debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Setup(tt.debug, tt.jsonFormat)
			if logger == nil {
				t.Fatal("Setup returned nil")
			}
			wantDebug := logger.Enabled(t.Context(), slog.LevelDebug)
			if wantDebug != tt.debug {
				t.Errorf("debug enabled = %v, want %v", wantDebug, tt.debug)
			}
		})
	}
}

func TestWithHelpers(t *testing.T) {
	logger := slog.Default()
	if WithOperation(logger, "send") == nil {
		t.Error("WithOperation returned nil")
	}
	if WithTool(logger, "gmail_send_email") == nil {
		t.Error("WithTool returned nil")
	}
	if WithService(logger, "gmail") == nil {
		t.Error("WithService returned nil")
	}
	if WithAccount(logger, "work") == nil {
		t.Error("WithAccount returned nil")
	}
}

func TestAttrs(t *testing.T) {
	tests := []struct {
		name    string
		attr    slog.Attr
		wantKey string
		wantVal string
	}{
		{"operation", Operation("send"), KeyOperation, "send"},
		{"service", Service("sheets"), KeyService, "sheets"},
		{"account", Account("work"), KeyAccount, "work"},
		{"backend", Backend("gogcli"), KeyBackend, "gogcli"},
		{"tool", Tool("sheets_read"), KeyTool, "sheets_read"},
		{"status", Status(StatusSuccess), KeyStatus, "success"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", tt.attr.Key, tt.wantKey)
			}
			if tt.attr.Value.String() != tt.wantVal {
				t.Errorf("value = %q, want %q", tt.attr.Value.String(), tt.wantVal)
			}
		})
	}
}

func TestErr(t *testing.T) {
	err := errors.New("test error")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "test error" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "test error")
	}

	// nil should produce an empty group that slog omits
	attr = Err(nil)
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestAnonymizeEmail(t *testing.T) {
	tests := []struct {
		email    string
		wantLen  int
		hasValue bool
	}{
		{"jane@example.com", 21, true}, // "user:" + 16 hex chars
		{"user@gmail.com", 21, true},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			result := AnonymizeEmail(tt.email)
			if tt.hasValue {
				if len(result) != tt.wantLen {
					t.Errorf("AnonymizeEmail(%q) length = %d, want %d", tt.email, len(result), tt.wantLen)
				}
				if result[:5] != "user:" {
					t.Errorf("AnonymizeEmail(%q) should start with 'user:', got %q", tt.email, result)
				}
			} else if result != "" {
				t.Errorf("AnonymizeEmail(%q) = %q, want empty string", tt.email, result)
			}
		})
	}

	hash1 := AnonymizeEmail("test@example.com")
	hash2 := AnonymizeEmail("test@example.com")
	if hash1 != hash2 {
		t.Error("AnonymizeEmail should return deterministic results")
	}

	hash3 := AnonymizeEmail("other@example.com")
	if hash1 == hash3 {
		t.Error("Different emails should produce different hashes")
	}
}
