// Package version holds build metadata injected via ldflags. The MCP
// server advertises Version as its implementation version during the
// initialize handshake.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
