// Package google_tools provides MCP tools for Google OAuth authentication
// on the api backend.
//
// The OAuth flow:
//  1. Call google_auth_status to check whether a token is stored for the
//     account; the response includes the consent URL when it is not
//  2. The user visits the URL and authorizes access
//  3. Call google_save_auth_code with the resulting code to exchange and
//     store the token
//
// The stored token covers every Workspace service the server exposes
// (Gmail, Sheets, Docs, Slides, Calendar, Drive) and is refreshed
// automatically. The gogcli backend manages its own credentials, so these
// tools are only needed when running with --backend api.
package google_tools
