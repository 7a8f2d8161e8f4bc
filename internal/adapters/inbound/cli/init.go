package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const configFileName = ".lintconv.yaml"

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .lintconv.yaml configuration file",
		Long:  "Create a .lintconv.yaml documenting the built-in conventions, with commented-out examples for overriding them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			if err := os.WriteFile(dest, []byte(sampleConfig), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .lintconv.yaml")

	return cmd
}

const sampleConfig = `# lint-conventions configuration
#
# Every section is optional; an empty file lints against the built-in
# convention table.

# Replace the templates for individual artifact kinds. Placeholders:
#   {component} {model}    snake_case names
#   {Component} {Model}    PascalCase names
#   {field} {Field}        GraphQL field name, server/client spelling
#   *                      wildcard fragment (migration timestamps)
#
# rules:
#   vite_entrypoint:
#     path_template: app/javascript/entrypoints/{component}.tsx

# Promote additional kinds to mandatory (model and migration always are).
#
# mandatory:
#   - graphql_type

# Exclude kinds from the checklist entirely.
#
# skip:
#   - view
`
