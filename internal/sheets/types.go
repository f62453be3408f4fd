package sheets

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// SpreadsheetInfo represents a created or inspected spreadsheet
type SpreadsheetInfo struct {
	ID    string `json:"spreadsheet_id"`
	Title string `json:"title,omitempty"`
	URL   string `json:"url,omitempty"`
}

// ValueRange represents cell values read from a range
type ValueRange struct {
	Range  string          `json:"range"`
	Values [][]interface{} `json:"values"`
}

// UpdateResult reports what a write or append touched
type UpdateResult struct {
	ID           string `json:"spreadsheet_id"`
	Range        string `json:"range,omitempty"`
	UpdatedCells int64  `json:"updated_cells"`
	UpdatedRows  int64  `json:"updated_rows"`
}

var spreadsheetURLPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// ParseSpreadsheetID accepts a raw spreadsheet ID or a full Google Sheets
// URL and returns the ID.
func ParseSpreadsheetID(idOrURL string) string {
	if m := spreadsheetURLPattern.FindStringSubmatch(idOrURL); m != nil {
		return m[1]
	}
	return strings.TrimSpace(idOrURL)
}

// ParseGridData parses tool-supplied cell data. A JSON 2D array is used as
// is; anything else is treated as CSV text, one row per line.
func ParseGridData(data string) ([][]interface{}, error) {
	trimmed := strings.TrimSpace(data)
	if trimmed == "" {
		return nil, fmt.Errorf("data must not be empty")
	}

	if strings.HasPrefix(trimmed, "[") {
		var grid [][]interface{}
		if err := json.Unmarshal([]byte(trimmed), &grid); err != nil {
			return nil, fmt.Errorf("invalid JSON 2D array: %w", err)
		}
		return grid, nil
	}

	reader := csv.NewReader(bytes.NewReader([]byte(trimmed)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV data: %w", err)
	}

	grid := make([][]interface{}, len(records))
	for i, row := range records {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		grid[i] = cells
	}
	return grid, nil
}
