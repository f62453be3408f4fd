package gmail

import (
	gmail "google.golang.org/api/gmail/v1"
)

// collectAttachments walks the MIME tree and returns metadata for every
// part that carries an attachment ID and a filename. Inline parts without
// a filename are skipped.
func collectAttachments(part *gmail.MessagePart) []AttachmentInfo {
	if part == nil {
		return nil
	}

	var attachments []AttachmentInfo
	if part.Filename != "" && part.Body != nil && part.Body.AttachmentId != "" {
		attachments = append(attachments, AttachmentInfo{
			AttachmentID: part.Body.AttachmentId,
			Filename:     part.Filename,
			MimeType:     part.MimeType,
			Size:         part.Body.Size,
		})
	}

	for _, p := range part.Parts {
		attachments = append(attachments, collectAttachments(p)...)
	}
	return attachments
}
