// Package drive provides a client for interacting with the Google Drive API.
//
// This package backs the api backend of the drive tools:
//   - Listing and searching files and folders
//   - Creating files with optional text content
//   - Creating folders
//   - Sharing files with a user by email
//   - Deleting files
//
// Each client instance is bound to a specific account; OAuth tokens come
// from the google package.
package drive
