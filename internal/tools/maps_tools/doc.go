// Package maps_tools provides MCP (Model Context Protocol) tools for
// Google Maps lookups: geocoding, distance, routing, and static map
// images. All tools are read-only and always registered.
//
// Maps has no OAuth-backed REST client in this server; the tools are
// available on the gogcli backend only and report an error when the
// server runs with the api backend.
package maps_tools
