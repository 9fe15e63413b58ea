package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arifer612/undock-compose/internal/compose"
	"github.com/arifer612/undock-compose/internal/ui"
)

// validateCmd checks that a compose file loads as a project.
var validateCmd = &cobra.Command{
	Use:   "validate <compose>",
	Short: "Check that a compose file loads",
	Long: `Load a compose file through the compose-go loader and report
whether it resolves to a valid project.

Examples:
  undock-compose validate docker-compose.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	project, err := compose.LoadProject(ctx, args[0])
	if err != nil {
		return fmt.Errorf("validate %s: %w", args[0], err)
	}

	ui.Success("%s loads as project %q (%d service(s))", args[0], project.Name, len(project.Services))
	return nil
}
