// Package sheets provides a client for the Google Sheets API, backing the
// api backend of the sheets tools. Cell data supplied by tools is accepted
// either as a JSON 2D array or as CSV text.
package sheets
