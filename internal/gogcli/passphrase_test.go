package gogcli

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// chunkedReader yields its parts one Read at a time so tests can control
// exactly how the stream is split.
type chunkedReader struct {
	parts []string
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if len(c.parts) == 0 {
		return 0, io.EOF
	}
	n := copy(p, c.parts[0])
	if n < len(c.parts[0]) {
		c.parts[0] = c.parts[0][n:]
	} else {
		c.parts = c.parts[1:]
	}
	return n, nil
}

func TestForwardAnsweringPassphrase(t *testing.T) {
	tests := []struct {
		name         string
		parts        []string
		wantAnswered bool
	}{
		{
			name:         "prompt in single chunk",
			parts:        []string{"Enter passphrase to unlock keyring: ", "ok\n"},
			wantAnswered: true,
		},
		{
			name:         "prompt split across chunks",
			parts:        []string{"Enter pass", "phrase: ", "done\n"},
			wantAnswered: true,
		},
		{
			name:         "prompt split byte by byte",
			parts:        strings.Split("Enter passphrase", ""),
			wantAnswered: true,
		},
		{
			name:         "no prompt",
			parts:        []string{"message sent\n", "id: abc123\n"},
			wantAnswered: false,
		},
		{
			name:         "similar but different text",
			parts:        []string{"Enter password: \n"},
			wantAnswered: false,
		},
		{
			name:         "empty stream",
			parts:        nil,
			wantAnswered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reply, out bytes.Buffer
			answered, err := forwardAnsweringPassphrase(&chunkedReader{parts: tt.parts}, &reply, &out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if answered != tt.wantAnswered {
				t.Errorf("answered = %v, want %v", answered, tt.wantAnswered)
			}

			wantReply := ""
			if tt.wantAnswered {
				wantReply = passphraseReply
			}
			if reply.String() != wantReply {
				t.Errorf("reply = %q, want %q", reply.String(), wantReply)
			}

			// Output must be the input verbatim, reply never included.
			want := strings.Join(tt.parts, "")
			if out.String() != want {
				t.Errorf("forwarded output = %q, want %q", out.String(), want)
			}
		})
	}
}

func TestForwardAnsweringPassphraseOnlyOnce(t *testing.T) {
	parts := []string{
		"Enter passphrase: ",
		"wrong, try again. Enter passphrase: ",
		"Enter passphrase: ",
	}

	var reply, out bytes.Buffer
	answered, err := forwardAnsweringPassphrase(&chunkedReader{parts: parts}, &reply, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !answered {
		t.Fatal("expected prompt to be answered")
	}
	if got := reply.String(); got != passphraseReply {
		t.Errorf("reply = %q, want exactly one confirmation %q", got, passphraseReply)
	}
	if want := strings.Join(parts, ""); out.String() != want {
		t.Errorf("forwarded output = %q, want %q", out.String(), want)
	}
}
