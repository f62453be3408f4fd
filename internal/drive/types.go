package drive

import "time"

// FileInfo represents metadata about a file or folder in Google Drive
type FileInfo struct {
	// ID is the unique identifier for the file
	ID string `json:"id"`

	// Name is the name of the file
	Name string `json:"name"`

	// MimeType is the MIME type of the file
	MimeType string `json:"mime_type"`

	// Size is the size of the file in bytes (not populated for folders)
	Size int64 `json:"size,omitempty"`

	// CreatedTime is when the file was created
	CreatedTime time.Time `json:"created_time,omitzero"`

	// ModifiedTime is when the file was last modified
	ModifiedTime time.Time `json:"modified_time,omitzero"`

	// WebViewLink is a link for opening the file in a Google editor or viewer
	WebViewLink string `json:"web_view_link,omitempty"`

	// Parents are the IDs of the parent folders
	Parents []string `json:"parents,omitempty"`

	// Owners are the owners of the file
	Owners []User `json:"owners,omitempty"`

	// Shared indicates whether the file is shared
	Shared bool `json:"shared"`

	// Trashed indicates whether the file is in the trash
	Trashed bool `json:"trashed"`
}

// User represents a Google Drive user (owner, permission holder, etc.)
type User struct {
	DisplayName  string `json:"display_name"`
	EmailAddress string `json:"email_address"`
}

// Permission represents access granted on a file
type Permission struct {
	// ID is the unique identifier for the permission
	ID string `json:"id"`

	// Type is the type of grantee (user, group, domain, anyone)
	Type string `json:"type"`

	// Role is the role granted (owner, writer, reader)
	Role string `json:"role"`

	// EmailAddress is the email address of the user or group
	EmailAddress string `json:"email_address,omitempty"`

	// DisplayName is the display name of the user or group
	DisplayName string `json:"display_name,omitempty"`
}
