package docs

import (
	"context"
	"fmt"

	docs "google.golang.org/api/docs/v1"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/mcptools/workspace-mcp/internal/google"
)

// Client wraps the Google Docs and Drive API services. Deleting a document
// goes through the Drive API because the Docs API has no delete call.
type Client struct {
	docsService  *docs.Service
	driveService *drive.Service
	account      string
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Docs client with OAuth2 authentication
// for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	docsService, err := docs.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs service: %w", err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		docsService:  docsService,
		driveService: driveService,
		account:      account,
	}, nil
}

// Create creates a new document. When content is non-empty it is inserted
// at the start of the body.
func (c *Client) Create(title, content string) (*DocumentInfo, error) {
	doc, err := c.docsService.Documents.Create(&docs.Document{Title: title}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	info := &DocumentInfo{
		ID:    doc.DocumentId,
		Title: doc.Title,
		URL:   "https://docs.google.com/document/d/" + doc.DocumentId + "/edit",
	}

	if content != "" {
		if err := c.insertText(doc.DocumentId, content, 1); err != nil {
			return nil, fmt.Errorf("document created but initial content failed: %w", err)
		}
	}

	return info, nil
}

// Read returns the plain text content of a document
func (c *Client) Read(documentID string) (*DocumentContent, error) {
	doc, err := c.docsService.Documents.Get(documentID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}

	return &DocumentContent{
		ID:    doc.DocumentId,
		Title: doc.Title,
		Text:  ExtractPlainText(doc),
	}, nil
}

// Append appends text to the end of the document body
func (c *Client) Append(documentID, text string) error {
	doc, err := c.docsService.Documents.Get(documentID).Do()
	if err != nil {
		return fmt.Errorf("failed to get document %s: %w", documentID, err)
	}

	// The last structural element holds the end index; insertion must stay
	// before the final implicit newline.
	endIndex := int64(1)
	if doc.Body != nil && len(doc.Body.Content) > 0 {
		last := doc.Body.Content[len(doc.Body.Content)-1]
		if last.EndIndex > 1 {
			endIndex = last.EndIndex - 1
		}
	}

	if err := c.insertText(documentID, text, endIndex); err != nil {
		return fmt.Errorf("failed to append to document %s: %w", documentID, err)
	}
	return nil
}

// Delete moves the document to the Drive trash
func (c *Client) Delete(documentID string) error {
	if err := c.driveService.Files.Delete(documentID).Do(); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, err)
	}
	return nil
}

func (c *Client) insertText(documentID, text string, index int64) error {
	_, err := c.docsService.Documents.BatchUpdate(documentID, &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{
			{
				InsertText: &docs.InsertTextRequest{
					Text:     text,
					Location: &docs.Location{Index: index},
				},
			},
		},
	}).Do()
	return err
}

// ExtractPlainText walks the document body and concatenates all text runs.
// Tables are flattened cell by cell.
func ExtractPlainText(doc *docs.Document) string {
	if doc == nil || doc.Body == nil {
		return ""
	}
	return extractFromElements(doc.Body.Content)
}

func extractFromElements(elements []*docs.StructuralElement) string {
	var out []byte
	for _, el := range elements {
		if el == nil {
			continue
		}
		if el.Paragraph != nil {
			for _, pe := range el.Paragraph.Elements {
				if pe.TextRun != nil {
					out = append(out, pe.TextRun.Content...)
				}
			}
		}
		if el.Table != nil {
			for _, row := range el.Table.TableRows {
				for _, cell := range row.TableCells {
					out = append(out, extractFromElements(cell.Content)...)
				}
			}
		}
	}
	return string(out)
}
