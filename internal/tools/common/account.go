package common

import (
	"github.com/mcptools/workspace-mcp/internal/server"
)

// GetAccountFromArgs extracts the account name from request arguments,
// falling back to the server's default account when absent.
func GetAccountFromArgs(sc *server.ServerContext, args map[string]interface{}) string {
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		return accountVal
	}
	if sc != nil {
		return sc.DefaultAccount()
	}
	return "default"
}

// StringArg returns the named string argument, or empty when missing.
func StringArg(args map[string]interface{}, name string) string {
	if v, ok := args[name].(string); ok {
		return v
	}
	return ""
}

// IntArg returns the named numeric argument as int64, or def when missing.
// JSON numbers arrive as float64.
func IntArg(args map[string]interface{}, name string, def int64) int64 {
	switch v := args[name].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return def
	}
}

// BoolArg returns the named boolean argument, or def when missing.
func BoolArg(args map[string]interface{}, name string, def bool) bool {
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// StringSliceArg returns the named argument as a string slice. Accepts a
// JSON array of strings; non-string elements are skipped.
func StringSliceArg(args map[string]interface{}, name string) []string {
	raw, ok := args[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
