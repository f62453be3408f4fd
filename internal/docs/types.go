package docs

import (
	"regexp"
	"strings"
)

// DocumentInfo represents a created document
type DocumentInfo struct {
	ID    string `json:"document_id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// DocumentContent represents a document's extracted text
type DocumentContent struct {
	ID    string `json:"document_id"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

var documentURLPattern = regexp.MustCompile(`/document/d/([a-zA-Z0-9-_]+)`)

// ParseDocumentID accepts a raw document ID or a full Google Docs URL and
// returns the ID.
func ParseDocumentID(idOrURL string) string {
	if m := documentURLPattern.FindStringSubmatch(idOrURL); m != nil {
		return m[1]
	}
	return strings.TrimSpace(idOrURL)
}
