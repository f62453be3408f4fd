// Package gogcli wraps the third-party gogcli binary. It builds command
// lines for every supported Workspace operation, executes them with a
// per-invocation timeout, and automates the OS keyring passphrase prompt
// through a pseudo-terminal so unattended tool calls do not hang.
//
// The runner never reimplements gogcli behaviour: output is passed through
// to the caller verbatim, and failures carry gogcli's own stderr text.
package gogcli
