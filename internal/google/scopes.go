package google

// DefaultOAuthScopes are the Google OAuth scopes the api backend requests.
//
// The scopes provide access to:
//   - Gmail: full access (includes send, modify, trash)
//   - Google Sheets: full access
//   - Google Docs: full access
//   - Google Slides: full access
//   - Google Drive: full access
//   - Google Calendar: full access
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Gmail scope
	"https://mail.google.com/", // Full Gmail access (includes send)

	// Google Sheets scope
	"https://www.googleapis.com/auth/spreadsheets",

	// Google Docs scope
	"https://www.googleapis.com/auth/documents",

	// Google Slides scope
	"https://www.googleapis.com/auth/presentations",

	// Google Drive scope
	"https://www.googleapis.com/auth/drive",

	// Google Calendar scope
	"https://www.googleapis.com/auth/calendar",
}
