package gmail

import (
	"regexp"
)

// docLinkPatterns maps Workspace URL shapes to a link type. The first
// capture group is the document or file ID.
var docLinkPatterns = []struct {
	linkType string
	re       *regexp.Regexp
}{
	{"document", regexp.MustCompile(`https?://docs\.google\.com/document/d/([a-zA-Z0-9_-]+)`)},
	{"spreadsheet", regexp.MustCompile(`https?://docs\.google\.com/spreadsheets/d/([a-zA-Z0-9_-]+)`)},
	{"presentation", regexp.MustCompile(`https?://docs\.google\.com/presentation/d/([a-zA-Z0-9_-]+)`)},
	{"drive", regexp.MustCompile(`https?://drive\.google\.com/file/d/([a-zA-Z0-9_-]+)`)},
	{"drive", regexp.MustCompile(`https?://drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`)},
}

// ExtractDocLinks returns the Google Docs, Sheets, Slides, and Drive links
// found in text, deduplicated by file ID.
func ExtractDocLinks(text string) []DocLink {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var links []DocLink
	for _, p := range docLinkPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			id := m[1]
			if seen[id] {
				continue
			}
			seen[id] = true
			links = append(links, DocLink{
				URL:  m[0],
				ID:   id,
				Type: p.linkType,
			})
		}
	}
	return links
}
