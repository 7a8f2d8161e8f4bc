package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewLintConvMCPServer creates a new MCP server with all lint-conventions
// tools and resources registered. The projectPath is the root directory of
// the project being linted.
func NewLintConvMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"lint-conventions",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
