// Package gmail provides a client for interacting with the Gmail API.
//
// This package backs the api backend of the Gmail tools:
//   - Send email (plain text and HTML, RFC 2822 with RFC 2047 subjects)
//   - List and search messages
//   - Read a message with decoded body text
//   - Label, archive and trash messages
//
// The client supports multi-account authentication using the Google OAuth2
// tokens stored by the google package.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClientForAccount(ctx, "work")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	msg := &gmail.EmailMessage{
//	    To:      []string{"recipient@example.com"},
//	    Subject: "Hello",
//	    Body:    "This is a test email",
//	}
//	msgID, err := client.SendEmail(msg)
//	if err != nil {
//	    log.Fatal(err)
//	}
package gmail
