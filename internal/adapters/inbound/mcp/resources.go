package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lintconv/lintconv/internal/adapters/outbound/config"
	"github.com/lintconv/lintconv/internal/domain"
)

// registerResources registers all lint-conventions MCP resources.
func registerResources(s *server.MCPServer, projectPath string) {
	// lintconv://rules - the effective convention table
	s.AddResource(
		mcplib.NewResource(
			"lintconv://rules",
			"Convention Table",
			mcplib.WithResourceDescription("The effective path and naming rules for every artifact kind, including project overrides"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(projectPath),
	)
}

func handleRulesResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		table := domain.DefaultRuleTable()
		if err := cfg.ApplyTo(table); err != nil {
			return nil, fmt.Errorf("applying rule overrides: %w", err)
		}

		data, err := json.MarshalIndent(table.Rules(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling rules: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
