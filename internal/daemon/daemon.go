package daemon

import "os"

// envMarker tells the re-executed child that it is already detached, so it
// must not try to detach again.
const envMarker = "WORKSPACE_MCP_DETACHED"

// IsDetachedChild reports whether this process is the background child of a
// --detach invocation.
func IsDetachedChild() bool {
	return os.Getenv(envMarker) == "1"
}
