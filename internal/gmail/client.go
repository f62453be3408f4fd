package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"

	gmail "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"

	"github.com/mcptools/workspace-mcp/internal/google"
)

// Client wraps the Gmail Users service
type Client struct {
	svc     *gmail.UsersService
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Gmail client with OAuth2 authentication
// for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, err
	}

	return &Client{
		svc:     svc.Users,
		account: account,
	}, nil
}

// SendEmail sends an email through the Gmail API and returns the message ID
func (c *Client) SendEmail(msg *EmailMessage) (string, error) {
	if len(msg.To) == 0 {
		return "", fmt.Errorf("at least one recipient is required")
	}
	if msg.Subject == "" {
		return "", fmt.Errorf("subject is required")
	}
	if msg.Body == "" {
		return "", fmt.Errorf("body is required")
	}

	raw := buildRFC2822(msg)

	sent, err := c.svc.Messages.Send("me", &gmail.Message{Raw: raw}).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return sent.Id, nil
}

// buildRFC2822 renders msg as a base64url-encoded RFC 2822 message.
func buildRFC2822(msg *EmailMessage) string {
	var b strings.Builder

	b.WriteString("To: ")
	b.WriteString(strings.Join(msg.To, ", "))
	b.WriteString("\r\n")

	if len(msg.Cc) > 0 {
		b.WriteString("Cc: ")
		b.WriteString(strings.Join(msg.Cc, ", "))
		b.WriteString("\r\n")
	}

	if len(msg.Bcc) > 0 {
		b.WriteString("Bcc: ")
		b.WriteString(strings.Join(msg.Bcc, ", "))
		b.WriteString("\r\n")
	}

	// Encode for non-ASCII characters like umlauts
	b.WriteString("Subject: ")
	b.WriteString(encodeRFC2047(msg.Subject))
	b.WriteString("\r\n")

	if msg.IsHTML {
		b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	} else {
		b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	}
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.Body)

	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// encodeRFC2047 encodes a string for use in email headers according to RFC 2047
func encodeRFC2047(s string) string {
	needsEncoding := false
	for _, r := range s {
		if r > 127 {
			needsEncoding = true
			break
		}
	}

	if !needsEncoding {
		return s
	}

	return mime.BEncoding.Encode("UTF-8", s)
}

// ListMessages returns the most recent messages from the inbox
func (c *Client) ListMessages(limit int64) ([]MessageSummary, error) {
	return c.SearchMessages("in:inbox", limit)
}

// SearchMessages returns messages matching a Gmail search query
func (c *Client) SearchMessages(query string, limit int64) ([]MessageSummary, error) {
	if limit <= 0 {
		limit = 10
	}

	res, err := c.svc.Messages.List("me").Q(query).MaxResults(limit).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	summaries := make([]MessageSummary, 0, len(res.Messages))
	for _, m := range res.Messages {
		full, err := c.svc.Messages.Get("me", m.Id).Format("metadata").
			MetadataHeaders("From", "To", "Subject", "Date").Do()
		if err != nil {
			return nil, fmt.Errorf("failed to get message %s: %w", m.Id, err)
		}
		summaries = append(summaries, toMessageSummary(full))
	}

	return summaries, nil
}

// ReadMessage returns a full message including its decoded body text
func (c *Client) ReadMessage(messageID string) (*MessageDetail, error) {
	msg, err := c.svc.Messages.Get("me", messageID).Format("full").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get message %s: %w", messageID, err)
	}

	body := extractBody(msg.Payload)
	detail := &MessageDetail{
		MessageSummary: toMessageSummary(msg),
		Cc:             headerValue(msg, "Cc"),
		Body:           body,
		Labels:         msg.LabelIds,
		Attachments:    collectAttachments(msg.Payload),
		DocLinks:       ExtractDocLinks(body),
	}
	return detail, nil
}

// ModifyLabels adds and/or removes labels on a message. Label names are
// resolved against the account's label list; system labels such as INBOX or
// STARRED match case-insensitively.
func (c *Client) ModifyLabels(messageID string, add, remove []string) error {
	if len(add) == 0 && len(remove) == 0 {
		return fmt.Errorf("at least one label to add or remove is required")
	}

	addIDs, err := c.resolveLabelIDs(add)
	if err != nil {
		return err
	}
	removeIDs, err := c.resolveLabelIDs(remove)
	if err != nil {
		return err
	}

	_, err = c.svc.Messages.Modify("me", messageID, &gmail.ModifyMessageRequest{
		AddLabelIds:    addIDs,
		RemoveLabelIds: removeIDs,
	}).Do()
	if err != nil {
		return fmt.Errorf("failed to modify labels on message %s: %w", messageID, err)
	}
	return nil
}

// ArchiveMessage archives a message by removing the INBOX label
func (c *Client) ArchiveMessage(messageID string) error {
	_, err := c.svc.Messages.Modify("me", messageID, &gmail.ModifyMessageRequest{
		RemoveLabelIds: []string{"INBOX"},
	}).Do()
	if err != nil {
		return fmt.Errorf("failed to archive message %s: %w", messageID, err)
	}
	return nil
}

// TrashMessage moves a message to the trash
func (c *Client) TrashMessage(messageID string) error {
	_, err := c.svc.Messages.Trash("me", messageID).Do()
	if err != nil {
		return fmt.Errorf("failed to trash message %s: %w", messageID, err)
	}
	return nil
}

// resolveLabelIDs maps label names to label IDs, fetching the label list
// once per call. Names already matching a label ID pass through unchanged.
func (c *Client) resolveLabelIDs(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	res, err := c.svc.Labels.List("me").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	byName := make(map[string]string, len(res.Labels))
	ids := make(map[string]bool, len(res.Labels))
	for _, l := range res.Labels {
		byName[strings.ToLower(l.Name)] = l.Id
		ids[l.Id] = true
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		if ids[name] {
			out = append(out, name)
			continue
		}
		id, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown label %q", name)
		}
		out = append(out, id)
	}
	return out, nil
}

func toMessageSummary(msg *gmail.Message) MessageSummary {
	if msg == nil {
		return MessageSummary{}
	}
	return MessageSummary{
		ID:       msg.Id,
		ThreadID: msg.ThreadId,
		From:     headerValue(msg, "From"),
		To:       headerValue(msg, "To"),
		Subject:  headerValue(msg, "Subject"),
		Date:     headerValue(msg, "Date"),
		Snippet:  msg.Snippet,
	}
}

func headerValue(msg *gmail.Message, name string) string {
	if msg == nil || msg.Payload == nil {
		return ""
	}
	for _, h := range msg.Payload.Headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// extractBody walks the MIME tree and returns the first text/plain part,
// falling back to text/html when no plain part exists.
func extractBody(part *gmail.MessagePart) string {
	if part == nil {
		return ""
	}

	if body := findBodyByMimeType(part, "text/plain"); body != "" {
		return body
	}
	return findBodyByMimeType(part, "text/html")
}

func findBodyByMimeType(part *gmail.MessagePart, mimeType string) string {
	if part == nil {
		return ""
	}
	if part.MimeType == mimeType && part.Body != nil && part.Body.Data != "" {
		return decodeBody(part.Body.Data)
	}
	for _, p := range part.Parts {
		if body := findBodyByMimeType(p, mimeType); body != "" {
			return body
		}
	}
	return ""
}

// decodeBody decodes a Gmail body payload. The API uses base64url, padded
// or not depending on the message.
func decodeBody(data string) string {
	if decoded, err := base64.RawURLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	if decoded, err := base64.URLEncoding.DecodeString(data); err == nil {
		return string(decoded)
	}
	return ""
}
