package drive

import (
	"context"
	"fmt"
	"strings"
	"time"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/mcptools/workspace-mcp/internal/google"
)

const (
	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"
)

// fileFields are the metadata fields requested for every file call.
const fileFields = "id, name, mimeType, size, createdTime, modifiedTime, webViewLink, parents, owners, shared, trashed"

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Google Drive client with OAuth2
// authentication for a specific account. Returns an error if no valid token
// exists; use HasTokenForAccount() to check first.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s: %w", account, err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		service: driveService,
		account: account,
	}, nil
}

// ListFiles lists files matching an optional Drive query. Trashed files are
// excluded unless the query says otherwise.
func (c *Client) ListFiles(ctx context.Context, query string, limit int) ([]*FileInfo, error) {
	if limit <= 0 {
		limit = 10
	}

	q := "trashed=false"
	if query != "" {
		q = query
	}

	fileList, err := c.service.Files.List().
		Context(ctx).
		Q(q).
		PageSize(int64(limit)).
		Fields(googleapi.Field("nextPageToken, files(" + fileFields + ")")).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}
	return files, nil
}

// CreateFile creates a file with the given name, MIME type and optional
// text content.
func (c *Client) CreateFile(ctx context.Context, name, mimeType, content string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if mimeType == "" {
		return nil, fmt.Errorf("MIME type is required")
	}

	file := &drive.File{
		Name:     name,
		MimeType: mimeType,
	}

	call := c.service.Files.Create(file).
		Context(ctx).
		Fields(googleapi.Field(fileFields))
	if content != "" {
		call = call.Media(strings.NewReader(content), googleapi.ContentType(mimeType))
	}

	driveFile, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return convertToFileInfo(driveFile), nil
}

// CreateFolder creates a new folder in Google Drive
func (c *Client) CreateFolder(ctx context.Context, name string) (*FileInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("folder name is required")
	}

	file := &drive.File{
		Name:     name,
		MimeType: FolderMimeType,
	}

	driveFile, err := c.service.Files.Create(file).
		Context(ctx).
		Fields(googleapi.Field(fileFields)).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	return convertToFileInfo(driveFile), nil
}

// ShareFile grants a user access to a file
func (c *Client) ShareFile(ctx context.Context, fileID, email, role string) (*Permission, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if role == "" {
		role = "reader"
	}
	if !ValidShareRole(role) {
		return nil, fmt.Errorf("invalid role %q, must be reader, writer or owner", role)
	}

	permission := &drive.Permission{
		Type:         "user",
		Role:         role,
		EmailAddress: email,
	}

	call := c.service.Permissions.Create(fileID, permission).
		Context(ctx).
		Fields("id, type, role, emailAddress, displayName")
	if role == "owner" {
		// The Drive API refuses ownership transfers unless asked explicitly.
		call = call.TransferOwnership(true)
	}

	drivePermission, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to share file: %w", err)
	}

	return convertToPermission(drivePermission), nil
}

// DeleteFile deletes a file from Google Drive
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if fileID == "" {
		return fmt.Errorf("fileID is required")
	}

	if err := c.service.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}
	return nil
}

// ValidShareRole reports whether role is one of the roles the share tool
// accepts.
func ValidShareRole(role string) bool {
	switch role {
	case "reader", "writer", "owner":
		return true
	}
	return false
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	if f == nil {
		return &FileInfo{}
	}

	fileInfo := &FileInfo{
		ID:          f.Id,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        f.Size,
		WebViewLink: f.WebViewLink,
		Parents:     f.Parents,
		Shared:      f.Shared,
		Trashed:     f.Trashed,
	}

	if f.CreatedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
			fileInfo.CreatedTime = t
		}
	}
	if f.ModifiedTime != "" {
		if t, err := time.Parse(time.RFC3339, f.ModifiedTime); err == nil {
			fileInfo.ModifiedTime = t
		}
	}

	for _, owner := range f.Owners {
		fileInfo.Owners = append(fileInfo.Owners, User{
			DisplayName:  owner.DisplayName,
			EmailAddress: owner.EmailAddress,
		})
	}

	return fileInfo
}

// convertToPermission converts a Drive API Permission to our Permission type
func convertToPermission(p *drive.Permission) *Permission {
	if p == nil {
		return &Permission{}
	}
	return &Permission{
		ID:           p.Id,
		Type:         p.Type,
		Role:         p.Role,
		EmailAddress: p.EmailAddress,
		DisplayName:  p.DisplayName,
	}
}
