// Package slides provides a client for the Google Slides API, backing the
// api backend of the slides tools.
package slides
