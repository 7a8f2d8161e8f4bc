package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/lintconv/lintconv/internal/adapters/outbound/config"
	"github.com/lintconv/lintconv/internal/adapters/outbound/gitinfo"
	"github.com/lintconv/lintconv/internal/adapters/outbound/history"
	"github.com/lintconv/lintconv/internal/adapters/outbound/scanner"
	"github.com/lintconv/lintconv/internal/application"
	"github.com/lintconv/lintconv/internal/domain"
)

// registerTools registers all lint-conventions MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. lintconv_lint
	s.AddTool(
		mcplib.NewTool("lintconv_lint",
			mcplib.WithDescription("Validate the files of a feature addition against the monolith's naming and placement conventions"),
			mcplib.WithString("component",
				mcplib.Required(),
				mcplib.Description("Component name (snake_case)"),
			),
			mcplib.WithString("model",
				mcplib.Required(),
				mcplib.Description("Model name (snake_case)"),
			),
			mcplib.WithString("paths",
				mcplib.Description("Comma-separated kind=path entries; omit to scan the project tree"),
			),
		),
		handleLint(projectPath),
	)

	// 2. lintconv_expected_paths
	s.AddTool(
		mcplib.NewTool("lintconv_expected_paths",
			mcplib.WithDescription("Returns the expected file layout and identifiers for a component/model pair as JSON"),
			mcplib.WithString("component",
				mcplib.Required(),
				mcplib.Description("Component name (snake_case)"),
			),
			mcplib.WithString("model",
				mcplib.Required(),
				mcplib.Description("Model name (snake_case)"),
			),
		),
		handleExpectedPaths(projectPath),
	)
}

func newLintService() *application.LintService {
	return application.NewLintService(config.New(), scanner.New(), gitinfo.New(), history.New())
}

func handleLint(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		component, err := request.RequireString("component")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		model, err := request.RequireString("model")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var provided map[domain.ArtifactKind]string
		scan := true
		args := request.GetArguments()
		if pathsStr, ok := args["paths"].(string); ok && pathsStr != "" {
			provided, err = parsePaths(pathsStr)
			if err != nil {
				return errorResult(err.Error()), nil
			}
			scan = false
		}

		report, err := newLintService().Lint(application.LintOptions{
			ProjectPath: projectPath,
			Component:   component,
			Model:       model,
			Paths:       provided,
			Scan:        scan,
			NoHistory:   true,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("lint failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleExpectedPaths(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		component, err := request.RequireString("component")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		model, err := request.RequireString("model")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewPathsService(config.New())
		expected, err := svc.ExpectedPaths(projectPath, component, model)
		if err != nil {
			return errorResult(fmt.Sprintf("rendering paths failed: %v", err)), nil
		}
		return jsonResult(expected)
	}
}

// parsePaths parses "model=a.rb,migration=b.rb" into a kind->path map.
func parsePaths(s string) (map[domain.ArtifactKind]string, error) {
	out := make(map[domain.ArtifactKind]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[1] == "" {
			return nil, fmt.Errorf("invalid paths entry %q (want kind=path)", pair)
		}
		kind, err := domain.ParseKind(strings.TrimSpace(kv[0]))
		if err != nil {
			return nil, err
		}
		out[kind] = strings.TrimSpace(kv[1])
	}
	return out, nil
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
