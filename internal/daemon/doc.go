// Package daemon detaches the server into the background. Go cannot fork,
// so detachment re-executes the current binary in a new session with stdio
// on /dev/null and lets the parent exit. There is no supervision: if the
// child dies it stays dead.
package daemon
