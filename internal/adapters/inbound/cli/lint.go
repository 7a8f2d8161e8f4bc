package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lintconv/lintconv/internal/adapters/outbound/config"
	"github.com/lintconv/lintconv/internal/adapters/outbound/gitinfo"
	"github.com/lintconv/lintconv/internal/adapters/outbound/history"
	"github.com/lintconv/lintconv/internal/adapters/outbound/scanner"
	"github.com/lintconv/lintconv/internal/adapters/outbound/tui"
	"github.com/lintconv/lintconv/internal/application"
	"github.com/lintconv/lintconv/internal/domain"
	"github.com/spf13/cobra"
)

func newLintCmd() *cobra.Command {
	var (
		component   string
		model       string
		pathsFlag   string
		scan        bool
		jsonOutput  bool
		plainOutput bool
		ciMode      bool
		noHistory   bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Validate a feature addition against the convention table",
		Long:  "Check the supplied (or scanned) artifact paths for a component/model pair against the naming and placement conventions. Exits 1 if any check fails.",
		RunE: func(cmd *cobra.Command, args []string) error {
			provided, err := parsePathsFlag(pathsFlag)
			if err != nil {
				return err
			}
			if len(provided) == 0 && !scan {
				return fmt.Errorf("supply --paths or use --scan to collect them from the project tree")
			}

			svc := application.NewLintService(config.New(), scanner.New(), gitinfo.New(), history.New())
			report, err := svc.Lint(application.LintOptions{
				ProjectPath: projectPath,
				Component:   component,
				Model:       model,
				Paths:       provided,
				Scan:        scan,
				NoHistory:   noHistory,
			})
			if err != nil {
				return fmt.Errorf("lint failed: %w", err)
			}

			switch {
			case jsonOutput:
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			case plainOutput || ciMode:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(report))
			default:
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !report.Ok() {
				return fmt.Errorf("%d of %d checks failed", report.Failed, len(report.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&component, "component", "", "Component name (snake_case)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (snake_case)")
	cmd.Flags().StringVar(&pathsFlag, "paths", "", "Candidate paths as kind=path,kind=path,...")
	cmd.Flags().BoolVar(&scan, "scan", false, "Collect candidate paths from the project tree")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&plainOutput, "plain", false, "One PASS|FAIL|SKIP line per check")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: plain output, exit 1 on any failure")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record the run in .lintconv/history")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path to lint")
	_ = cmd.MarkFlagRequired("component")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

// parsePathsFlag parses "model=a.rb,migration=b.rb" into a kind->path map.
func parsePathsFlag(s string) (map[domain.ArtifactKind]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	out := make(map[domain.ArtifactKind]string)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 || kv[1] == "" {
			return nil, fmt.Errorf("invalid --paths entry %q (want kind=path)", pair)
		}
		kind, err := domain.ParseKind(strings.TrimSpace(kv[0]))
		if err != nil {
			return nil, err
		}
		if _, dup := out[kind]; dup {
			return nil, fmt.Errorf("duplicate --paths entry for kind %q", kind)
		}
		out[kind] = strings.TrimSpace(kv[1])
	}
	return out, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
