package sheets

import (
	"context"
	"fmt"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/mcptools/workspace-mcp/internal/google"
)

// Client wraps the Sheets service. Deleting a spreadsheet goes through the
// Drive API because the Sheets API has no delete call.
type Client struct {
	svc      *sheets.Service
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

// NewClientForAccount creates a new Sheets client with OAuth2 authentication
// for a specific account
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
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

// Create creates a new spreadsheet. When data is non-empty it is written to
// the first sheet starting at A1.
func (c *Client) Create(title string, data [][]interface{}) (*SpreadsheetInfo, error) {
	spreadsheet, err := c.svc.Spreadsheets.Create(&sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{Title: title},
	}).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	info := &SpreadsheetInfo{
		ID:    spreadsheet.SpreadsheetId,
		Title: title,
		URL:   spreadsheet.SpreadsheetUrl,
	}

	if len(data) > 0 {
		if _, err := c.Write(spreadsheet.SpreadsheetId, "A1", data); err != nil {
			return nil, fmt.Errorf("spreadsheet created but initial data write failed: %w", err)
		}
	}

	return info, nil
}

// Read returns the cell values of a range
func (c *Client) Read(spreadsheetID, readRange string) (*ValueRange, error) {
	if readRange == "" {
		readRange = "A1"
	}

	res, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	return &ValueRange{
		Range:  res.Range,
		Values: res.Values,
	}, nil
}

// Write overwrites a range with the given values
func (c *Client) Write(spreadsheetID, writeRange string, values [][]interface{}) (*UpdateResult, error) {
	res, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, writeRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to write range %s: %w", writeRange, err)
	}

	return &UpdateResult{
		ID:           spreadsheetID,
		Range:        res.UpdatedRange,
		UpdatedCells: res.UpdatedCells,
		UpdatedRows:  res.UpdatedRows,
	}, nil
}

// Append appends rows after the last row of the table found in the range
func (c *Client) Append(spreadsheetID, appendRange string, values [][]interface{}) (*UpdateResult, error) {
	if appendRange == "" {
		appendRange = "A1"
	}

	res, err := c.svc.Spreadsheets.Values.Append(spreadsheetID, appendRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").InsertDataOption("INSERT_ROWS").Do()
	if err != nil {
		return nil, fmt.Errorf("failed to append to range %s: %w", appendRange, err)
	}

	result := &UpdateResult{ID: spreadsheetID}
	if res.Updates != nil {
		result.Range = res.Updates.UpdatedRange
		result.UpdatedCells = res.Updates.UpdatedCells
		result.UpdatedRows = res.Updates.UpdatedRows
	}
	return result, nil
}

// Delete moves the spreadsheet to the Drive trash
func (c *Client) Delete(spreadsheetID string) error {
	if err := c.driveSvc.Files.Delete(spreadsheetID).Do(); err != nil {
		return fmt.Errorf("failed to delete spreadsheet %s: %w", spreadsheetID, err)
	}
	return nil
}
