// Package docs provides a client for the Google Docs API, backing the api
// backend of the docs tools.
//
// The package handles:
//   - Document creation with optional initial content
//   - Plain text extraction from the document body, tables included
//   - Appending text at the end of the body
//   - Deletion via the Drive API (the Docs API has no delete call)
package docs
