package gmail

// EmailMessage represents an outgoing email
type EmailMessage struct {
	To      []string
	Cc      []string
	Bcc     []string
	Subject string
	Body    string
	IsHTML  bool
}

// MessageSummary represents a simplified Gmail message for listing
type MessageSummary struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	From     string `json:"from"`
	To       string `json:"to,omitempty"`
	Subject  string `json:"subject"`
	Date     string `json:"date"`
	Snippet  string `json:"snippet,omitempty"`
}

// MessageDetail represents a full Gmail message including its body
type MessageDetail struct {
	MessageSummary
	Cc          string           `json:"cc,omitempty"`
	Body        string           `json:"body"`
	Labels      []string         `json:"labels,omitempty"`
	Attachments []AttachmentInfo `json:"attachments,omitempty"`
	DocLinks    []DocLink        `json:"doc_links,omitempty"`
}

// AttachmentInfo describes an attachment on a message. The attachment ID is
// what the Gmail API needs to download the content.
type AttachmentInfo struct {
	AttachmentID string `json:"attachment_id"`
	Filename     string `json:"filename"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}

// DocLink is a Google Docs, Sheets, Slides, or Drive link found in a
// message body.
type DocLink struct {
	URL  string `json:"url"`
	ID   string `json:"id"`
	Type string `json:"type"`
}
