package slides

import (
	"regexp"
	"strings"
)

// PresentationInfo represents a created presentation
type PresentationInfo struct {
	ID    string `json:"presentation_id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// PresentationDetail represents a presentation with its slide texts
type PresentationDetail struct {
	ID     string   `json:"presentation_id"`
	Title  string   `json:"title"`
	Slides []string `json:"slides"`
}

var presentationURLPattern = regexp.MustCompile(`/presentation/d/([a-zA-Z0-9-_]+)`)

// ParsePresentationID accepts a raw presentation ID or a full Google Slides
// URL and returns the ID.
func ParsePresentationID(idOrURL string) string {
	if m := presentationURLPattern.FindStringSubmatch(idOrURL); m != nil {
		return m[1]
	}
	return strings.TrimSpace(idOrURL)
}
