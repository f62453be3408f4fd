package gmail

import (
	"encoding/base64"
	"strings"
	"testing"

	gmail "google.golang.org/api/gmail/v1"
)

func TestEncodeRFC2047(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ASCII only",
			input:    "Hello World",
			expected: "Hello World",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "German umlauts",
			input:    "Grüße aus München",
			expected: "=?UTF-8?b?R3LDvMOfZSBhdXMgTcO8bmNoZW4=?=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeRFC2047(tt.input)
			if got != tt.expected {
				t.Errorf("encodeRFC2047(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildRFC2822(t *testing.T) {
	msg := &EmailMessage{
		To:      []string{"a@example.com", "b@example.com"},
		Cc:      []string{"c@example.com"},
		Subject: "Hello",
		Body:    "Plain body",
	}

	raw := buildRFC2822(msg)
	decoded, err := base64.URLEncoding.DecodeString(raw)
	if err != nil {
		t.Fatalf("raw message is not valid base64url: %v", err)
	}
	text := string(decoded)

	wantLines := []string{
		"To: a@example.com, b@example.com\r\n",
		"Cc: c@example.com\r\n",
		"Subject: Hello\r\n",
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n",
		"MIME-Version: 1.0\r\n",
	}
	for _, line := range wantLines {
		if !strings.Contains(text, line) {
			t.Errorf("message missing %q:\n%s", line, text)
		}
	}
	if strings.Contains(text, "Bcc:") {
		t.Error("Bcc header should be absent when no bcc given")
	}
	if !strings.HasSuffix(text, "\r\n\r\nPlain body") {
		t.Errorf("body should follow blank line, got:\n%s", text)
	}
}

func TestBuildRFC2822HTML(t *testing.T) {
	msg := &EmailMessage{
		To:      []string{"a@example.com"},
		Bcc:     []string{"hidden@example.com"},
		Subject: "Report",
		Body:    "<h1>Hi</h1>",
		IsHTML:  true,
	}

	decoded, err := base64.URLEncoding.DecodeString(buildRFC2822(msg))
	if err != nil {
		t.Fatalf("raw message is not valid base64url: %v", err)
	}
	text := string(decoded)

	if !strings.Contains(text, "Content-Type: text/html; charset=\"UTF-8\"\r\n") {
		t.Errorf("expected HTML content type:\n%s", text)
	}
	if !strings.Contains(text, "Bcc: hidden@example.com\r\n") {
		t.Errorf("expected Bcc header:\n%s", text)
	}
}

func TestToMessageSummary(t *testing.T) {
	if got := toMessageSummary(nil); got.ID != "" {
		t.Errorf("expected empty summary for nil message, got %+v", got)
	}

	msg := &gmail.Message{
		Id:       "m1",
		ThreadId: "t1",
		Snippet:  "hello...",
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "From", Value: "sender@example.com"},
				{Name: "Subject", Value: "Hi"},
				{Name: "Date", Value: "Mon, 1 Jan 2026 10:00:00 +0000"},
			},
		},
	}

	got := toMessageSummary(msg)
	if got.ID != "m1" || got.ThreadID != "t1" {
		t.Errorf("ids = %q/%q", got.ID, got.ThreadID)
	}
	if got.From != "sender@example.com" {
		t.Errorf("from = %q", got.From)
	}
	if got.Subject != "Hi" {
		t.Errorf("subject = %q", got.Subject)
	}
	if got.Snippet != "hello..." {
		t.Errorf("snippet = %q", got.Snippet)
	}
}

func TestHeaderValueCaseInsensitive(t *testing.T) {
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "subject", Value: "lowercase header"},
			},
		},
	}
	if got := headerValue(msg, "Subject"); got != "lowercase header" {
		t.Errorf("headerValue = %q", got)
	}
	if got := headerValue(msg, "Missing"); got != "" {
		t.Errorf("headerValue for missing header = %q", got)
	}
	if got := headerValue(nil, "Subject"); got != "" {
		t.Errorf("headerValue for nil message = %q", got)
	}
}

func TestExtractBody(t *testing.T) {
	encode := func(s string) string {
		return base64.RawURLEncoding.EncodeToString([]byte(s))
	}

	tests := []struct {
		name     string
		payload  *gmail.MessagePart
		expected string
	}{
		{
			name:     "nil payload",
			payload:  nil,
			expected: "",
		},
		{
			name: "plain text at top level",
			payload: &gmail.MessagePart{
				MimeType: "text/plain",
				Body:     &gmail.MessagePartBody{Data: encode("hello")},
			},
			expected: "hello",
		},
		{
			name: "multipart prefers plain over html",
			payload: &gmail.MessagePart{
				MimeType: "multipart/alternative",
				Parts: []*gmail.MessagePart{
					{
						MimeType: "text/html",
						Body:     &gmail.MessagePartBody{Data: encode("<p>hi</p>")},
					},
					{
						MimeType: "text/plain",
						Body:     &gmail.MessagePartBody{Data: encode("hi")},
					},
				},
			},
			expected: "hi",
		},
		{
			name: "html only falls back to html",
			payload: &gmail.MessagePart{
				MimeType: "multipart/alternative",
				Parts: []*gmail.MessagePart{
					{
						MimeType: "text/html",
						Body:     &gmail.MessagePartBody{Data: encode("<p>hi</p>")},
					},
				},
			},
			expected: "<p>hi</p>",
		},
		{
			name: "nested multipart",
			payload: &gmail.MessagePart{
				MimeType: "multipart/mixed",
				Parts: []*gmail.MessagePart{
					{
						MimeType: "multipart/alternative",
						Parts: []*gmail.MessagePart{
							{
								MimeType: "text/plain",
								Body:     &gmail.MessagePartBody{Data: encode("nested")},
							},
						},
					},
				},
			},
			expected: "nested",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractBody(tt.payload)
			if got != tt.expected {
				t.Errorf("extractBody() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDecodeBody(t *testing.T) {
	raw := base64.RawURLEncoding.EncodeToString([]byte("unpadded"))
	padded := base64.URLEncoding.EncodeToString([]byte("padded!"))

	if got := decodeBody(raw); got != "unpadded" {
		t.Errorf("decodeBody(raw) = %q", got)
	}
	if got := decodeBody(padded); got != "padded!" {
		t.Errorf("decodeBody(padded) = %q", got)
	}
	if got := decodeBody("!!! not base64 !!!"); got != "" {
		t.Errorf("decodeBody(garbage) = %q, want empty", got)
	}
}

func TestSendEmailValidation(t *testing.T) {
	c := &Client{}

	tests := []struct {
		name string
		msg  *EmailMessage
	}{
		{"no recipients", &EmailMessage{Subject: "s", Body: "b"}},
		{"no subject", &EmailMessage{To: []string{"a@b.com"}, Body: "b"}},
		{"no body", &EmailMessage{To: []string{"a@b.com"}, Subject: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.SendEmail(tt.msg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
