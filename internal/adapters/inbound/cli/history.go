package cli

import (
	"fmt"

	"github.com/lintconv/lintconv/internal/adapters/outbound/history"
	"github.com/lintconv/lintconv/internal/adapters/outbound/tui"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		jsonOutput  bool
		projectPath string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded lint runs for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := history.New().Load(projectPath)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, entries)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&projectPath, "path", ".", "Project path")

	return cmd
}
