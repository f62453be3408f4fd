package slides

import (
	"testing"

	slides "google.golang.org/api/slides/v1"
)

func TestParsePresentationID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "raw ID",
			input:    "1XYZ789abc",
			expected: "1XYZ789abc",
		},
		{
			name:     "edit URL",
			input:    "https://docs.google.com/presentation/d/1XYZ789abc/edit#slide=id.p",
			expected: "1XYZ789abc",
		},
		{
			name:     "whitespace trimmed",
			input:    " plainid ",
			expected: "plainid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePresentationID(tt.input)
			if got != tt.expected {
				t.Errorf("ParsePresentationID(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExtractSlideText(t *testing.T) {
	tests := []struct {
		name     string
		slide    *slides.Page
		expected string
	}{
		{
			name:     "nil slide",
			slide:    nil,
			expected: "",
		},
		{
			name:     "no elements",
			slide:    &slides.Page{},
			expected: "",
		},
		{
			name: "shapes with text",
			slide: &slides.Page{
				PageElements: []*slides.PageElement{
					{
						Shape: &slides.Shape{
							Text: &slides.TextContent{
								TextElements: []*slides.TextElement{
									{TextRun: &slides.TextRun{Content: "Title\n"}},
								},
							},
						},
					},
					{
						Shape: &slides.Shape{
							Text: &slides.TextContent{
								TextElements: []*slides.TextElement{
									{TextRun: &slides.TextRun{Content: "Body text\n"}},
								},
							},
						},
					},
				},
			},
			expected: "Title\nBody text\n",
		},
		{
			name: "elements without text skipped",
			slide: &slides.Page{
				PageElements: []*slides.PageElement{
					{},
					{Shape: &slides.Shape{}},
					{
						Shape: &slides.Shape{
							Text: &slides.TextContent{
								TextElements: []*slides.TextElement{
									{TextRun: &slides.TextRun{Content: "only this\n"}},
								},
							},
						},
					},
				},
			},
			expected: "only this\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSlideText(tt.slide)
			if got != tt.expected {
				t.Errorf("extractSlideText() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestHasTokenForAccount(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	if HasTokenForAccount("") {
		t.Error("expected false for empty account name")
	}
}
