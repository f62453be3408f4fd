package gogcli

import "strconv"

// Command describes a single gogcli invocation: `gogcli <service> <action>
// [--account <acc>] <args...>`. Constructors below centralize the flag
// formatting for every tool so handlers never build argv by hand.
type Command struct {
	Service string
	Action  string
	Args    []string
}

// argv renders the full argument vector for the given binary and account.
// An empty action is allowed for top-level flags such as --version.
func (c Command) argv(bin, account string) []string {
	out := []string{bin, c.Service}
	if c.Action != "" {
		out = append(out, c.Action)
	}
	if account != "" {
		out = append(out, "--account", account)
	}
	return append(out, c.Args...)
}

// Version reports the gogcli binary version.
func Version() Command {
	return Command{Service: "--version"}
}

// Gmail

// GmailSend builds a send command. When html is true the body is passed via
// --body-html so gogcli produces a text/html message.
func GmailSend(to, subject, body, cc, bcc string, html bool) Command {
	args := []string{"--to", to, "--subject", subject}
	if cc != "" {
		args = append(args, "--cc", cc)
	}
	if bcc != "" {
		args = append(args, "--bcc", bcc)
	}
	if html {
		args = append(args, "--body-html="+body)
	} else {
		args = append(args, "--body", body)
	}
	return Command{Service: "gmail", Action: "send", Args: args}
}

func GmailList(limit int) Command {
	return Command{Service: "gmail", Action: "list", Args: []string{"--limit", strconv.Itoa(limit)}}
}

func GmailSearch(query string, limit int) Command {
	return Command{Service: "gmail", Action: "search", Args: []string{"--query", query, "--limit", strconv.Itoa(limit)}}
}

func GmailRead(messageID string) Command {
	return Command{Service: "gmail", Action: "read", Args: []string{"--id", messageID}}
}

func GmailLabelAdd(messageID, labels string) Command {
	return Command{Service: "gmail", Action: "label", Args: []string{"--id", messageID, "--add", labels}}
}

func GmailLabelRemove(messageID, labels string) Command {
	return Command{Service: "gmail", Action: "label", Args: []string{"--id", messageID, "--remove", labels}}
}

func GmailArchive(messageID string) Command {
	return Command{Service: "gmail", Action: "archive", Args: []string{"--id", messageID}}
}

func GmailDelete(messageID string) Command {
	return Command{Service: "gmail", Action: "delete", Args: []string{"--id", messageID}}
}

// Sheets

func SheetsCreate(title string) Command {
	return Command{Service: "sheets", Action: "create", Args: []string{"--title", title}}
}

func SheetsGet(spreadsheetID, rangeVal string) Command {
	return Command{Service: "sheets", Action: "get", Args: []string{"--id", spreadsheetID, "--range", rangeVal}}
}

func SheetsUpdate(spreadsheetID, rangeVal, data string) Command {
	return Command{Service: "sheets", Action: "update", Args: []string{"--id", spreadsheetID, "--range", rangeVal, "--data", data}}
}

func SheetsAppend(spreadsheetID, rangeVal, data string) Command {
	return Command{Service: "sheets", Action: "append", Args: []string{"--id", spreadsheetID, "--range", rangeVal, "--data", data}}
}

func SheetsDelete(spreadsheetID string) Command {
	return Command{Service: "sheets", Action: "delete", Args: []string{"--id", spreadsheetID}}
}

// Docs

func DocsCreate(title, content string) Command {
	args := []string{"--title", title}
	if content != "" {
		args = append(args, "--content", content)
	}
	return Command{Service: "docs", Action: "create", Args: args}
}

func DocsGet(documentID string) Command {
	return Command{Service: "docs", Action: "get", Args: []string{"--id", documentID}}
}

func DocsAppend(documentID, text string) Command {
	return Command{Service: "docs", Action: "append", Args: []string{"--id", documentID, "--text", text}}
}

func DocsDelete(documentID string) Command {
	return Command{Service: "docs", Action: "delete", Args: []string{"--id", documentID}}
}

// Slides

func SlidesCreate(title string) Command {
	return Command{Service: "slides", Action: "create", Args: []string{"--title", title}}
}

func SlidesGet(presentationID string) Command {
	return Command{Service: "slides", Action: "get", Args: []string{"--id", presentationID}}
}

func SlidesDelete(presentationID string) Command {
	return Command{Service: "slides", Action: "delete", Args: []string{"--id", presentationID}}
}

// Calendar

// CalendarEventFields carries the optional parts of a calendar event.
// Empty fields are omitted from the command line.
type CalendarEventFields struct {
	Title       string
	Start       string
	End         string
	Description string
	Location    string
	Attendees   string
}

func CalendarCreate(title, start, end string, opt CalendarEventFields) Command {
	args := []string{"--title", title, "--start", start, "--end", end}
	if opt.Description != "" {
		args = append(args, "--description", opt.Description)
	}
	if opt.Location != "" {
		args = append(args, "--location", opt.Location)
	}
	if opt.Attendees != "" {
		args = append(args, "--attendees", opt.Attendees)
	}
	return Command{Service: "calendar", Action: "create", Args: args}
}

func CalendarList(start, end string, limit int) Command {
	args := []string{"--limit", strconv.Itoa(limit)}
	if start != "" {
		args = append(args, "--start", start)
	}
	if end != "" {
		args = append(args, "--end", end)
	}
	return Command{Service: "calendar", Action: "list", Args: args}
}

func CalendarUpdate(eventID string, fields CalendarEventFields) Command {
	args := []string{"--id", eventID}
	if fields.Title != "" {
		args = append(args, "--title", fields.Title)
	}
	if fields.Start != "" {
		args = append(args, "--start", fields.Start)
	}
	if fields.End != "" {
		args = append(args, "--end", fields.End)
	}
	if fields.Description != "" {
		args = append(args, "--description", fields.Description)
	}
	if fields.Location != "" {
		args = append(args, "--location", fields.Location)
	}
	return Command{Service: "calendar", Action: "update", Args: args}
}

func CalendarDelete(eventID string) Command {
	return Command{Service: "calendar", Action: "delete", Args: []string{"--id", eventID}}
}

// Drive

func DriveList(query string, limit int) Command {
	args := []string{"--limit", strconv.Itoa(limit)}
	if query != "" {
		args = append(args, "--query", query)
	}
	return Command{Service: "drive", Action: "list", Args: args}
}

func DriveCreate(name, mimeType, content string) Command {
	args := []string{"--name", name, "--mime-type", mimeType}
	if content != "" {
		args = append(args, "--content", content)
	}
	return Command{Service: "drive", Action: "create", Args: args}
}

func DriveMkdir(name string) Command {
	return Command{Service: "drive", Action: "mkdir", Args: []string{"--name", name}}
}

func DriveShare(fileID, email, role string) Command {
	return Command{Service: "drive", Action: "share", Args: []string{"--id", fileID, "--email", email, "--role", role}}
}

func DriveDelete(fileID string) Command {
	return Command{Service: "drive", Action: "delete", Args: []string{"--id", fileID}}
}

// Maps

func MapsGeocode(address string) Command {
	return Command{Service: "maps", Action: "geocode", Args: []string{"--address", address}}
}

func MapsDistance(origin, destination string) Command {
	return Command{Service: "maps", Action: "distance", Args: []string{"--origin", origin, "--destination", destination}}
}

func MapsRoute(origin, destination string) Command {
	return Command{Service: "maps", Action: "route", Args: []string{"--origin", origin, "--destination", destination}}
}

func MapsStatic(center string, zoom int) Command {
	return Command{Service: "maps", Action: "static", Args: []string{"--center", center, "--zoom", strconv.Itoa(zoom)}}
}
