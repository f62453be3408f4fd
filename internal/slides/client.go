package slides

import (
	"context"
	"fmt"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	slides "google.golang.org/api/slides/v1"

	"github.com/mcptools/workspace-mcp/internal/google"
)

// Client wraps the Slides service. Deleting a presentation goes through the
// Drive API because the Slides API has no delete call.
type Client struct {
	svc      *slides.Service
	driveSvc *drive.Service
	account  string
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Slides client with OAuth2 authentication
// for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	svc, err := slides.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Slides service: %w", err)
	}

	driveSvc, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		svc:      svc,
		driveSvc: driveSvc,
		account:  account,
	}, nil
}

// Create creates a new presentation
func (c *Client) Create(title string) (*PresentationInfo, error) {
	pres, err := c.svc.Presentations.Create(&slides.Presentation{Title: title}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create presentation: %w", err)
	}

	return &PresentationInfo{
		ID:    pres.PresentationId,
		Title: pres.Title,
		URL:   "https://docs.google.com/presentation/d/" + pres.PresentationId + "/edit",
	}, nil
}

// Read returns the presentation with the text of each slide
func (c *Client) Read(presentationID string) (*PresentationDetail, error) {
	pres, err := c.svc.Presentations.Get(presentationID).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get presentation %s: %w", presentationID, err)
	}

	detail := &PresentationDetail{
		ID:     pres.PresentationId,
		Title:  pres.Title,
		Slides: make([]string, 0, len(pres.Slides)),
	}
	for _, slide := range pres.Slides {
		detail.Slides = append(detail.Slides, extractSlideText(slide))
	}
	return detail, nil
}

// Delete moves the presentation to the Drive trash
func (c *Client) Delete(presentationID string) error {
	if err := c.driveSvc.Files.Delete(presentationID).Do(); err != nil {
		return fmt.Errorf("failed to delete presentation %s: %w", presentationID, err)
	}
	return nil
}

// extractSlideText collects the text of all shapes on a slide.
func extractSlideText(slide *slides.Page) string {
	if slide == nil {
		return ""
	}
	var out []byte
	for _, el := range slide.PageElements {
		if el == nil || el.Shape == nil || el.Shape.Text == nil {
			continue
		}
		for _, te := range el.Shape.Text.TextElements {
			if te.TextRun != nil {
				out = append(out, te.TextRun.Content...)
			}
		}
	}
	return string(out)
}
