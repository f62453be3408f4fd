// Package google provides OAuth2 authentication and token management for
// the api backend.
//
// Client credentials come from the environment; per-account tokens are
// stored as JSON files under the user cache directory and refreshed
// automatically by the oauth2 token source.
package google
