package gmail

import (
	"testing"
)

func TestExtractDocLinks(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantID   string
		wantType string
	}{
		{
			name:     "document",
			text:     "see https://docs.google.com/document/d/1AbC_d-Ef/edit#heading=h.x",
			wantID:   "1AbC_d-Ef",
			wantType: "document",
		},
		{
			name:     "spreadsheet",
			text:     "data in https://docs.google.com/spreadsheets/d/sheetID123/edit?gid=0",
			wantID:   "sheetID123",
			wantType: "spreadsheet",
		},
		{
			name:     "presentation",
			text:     "slides: https://docs.google.com/presentation/d/presID456",
			wantID:   "presID456",
			wantType: "presentation",
		},
		{
			name:     "drive file",
			text:     "attached https://drive.google.com/file/d/fileID789/view",
			wantID:   "fileID789",
			wantType: "drive",
		},
		{
			name:     "drive open link",
			text:     "https://drive.google.com/open?id=openID321",
			wantID:   "openID321",
			wantType: "drive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := ExtractDocLinks(tt.text)
			if len(links) != 1 {
				t.Fatalf("got %d links, want 1: %+v", len(links), links)
			}
			if links[0].ID != tt.wantID {
				t.Errorf("ID = %q, want %q", links[0].ID, tt.wantID)
			}
			if links[0].Type != tt.wantType {
				t.Errorf("Type = %q, want %q", links[0].Type, tt.wantType)
			}
		})
	}
}

func TestExtractDocLinks_DeduplicatesByID(t *testing.T) {
	text := "https://docs.google.com/document/d/sameID/edit and again " +
		"https://docs.google.com/document/d/sameID/preview"

	links := ExtractDocLinks(text)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), links)
	}
}

func TestExtractDocLinks_NoLinks(t *testing.T) {
	if links := ExtractDocLinks("plain text, no links here"); links != nil {
		t.Errorf("got %+v, want nil", links)
	}
	if links := ExtractDocLinks(""); links != nil {
		t.Errorf("got %+v, want nil", links)
	}
}
