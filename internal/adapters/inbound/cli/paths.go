package cli

import (
	"fmt"

	"github.com/lintconv/lintconv/internal/adapters/outbound/config"
	"github.com/lintconv/lintconv/internal/adapters/outbound/tui"
	"github.com/lintconv/lintconv/internal/application"
	"github.com/spf13/cobra"
)

func newPathsCmd() *cobra.Command {
	var (
		component   string
		model       string
		jsonOutput  bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the expected file layout for a component/model pair",
		Long:  "Render the convention table for a concrete component and model: where every artifact belongs and what it must be named.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewPathsService(config.New())
			expected, err := svc.ExpectedPaths(projectPath, component, model)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, expected)
			}

			rows := make([]tui.PathRow, 0, len(expected))
			for _, e := range expected {
				rows = append(rows, tui.PathRow{
					Kind:      string(e.Kind),
					Path:      e.Path,
					Ident:     e.Ident,
					Mandatory: e.Mandatory,
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderExpectedPaths(component, model, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&component, "component", "", "Component name (snake_case)")
	cmd.Flags().StringVar(&model, "model", "", "Model name (snake_case)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path (for .lintconv.yaml overrides)")
	_ = cmd.MarkFlagRequired("component")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}
