package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arifer612/undock-compose/internal/compose"
	"github.com/arifer612/undock-compose/internal/config"
	"github.com/arifer612/undock-compose/internal/fileutil"
	"github.com/arifer612/undock-compose/internal/lock"
	"github.com/arifer612/undock-compose/internal/template"
	"github.com/arifer612/undock-compose/internal/ui"
)

var (
	convertLabels bool
	convertDryRun bool
	convertForce  bool
	convertCheck  bool
)

// convertCmd converts a template into a compose file.
var convertCmd = &cobra.Command{
	Use:   "convert <template> [output]",
	Short: "Convert a template to a compose file",
	Long: `Convert an unRAID XML template into a Docker Compose file.

When no output path is given, docker-compose.yaml is written next to
the template.

Examples:
  undock-compose convert plex.xml                # plex/docker-compose.yaml
  undock-compose convert plex.xml compose.yaml   # explicit output
  undock-compose convert -n plex.xml             # dry run to stdout
  undock-compose convert -l plex.xml             # with config labels`,
	// Extra positionals beyond the two paths are ignored, and unknown
	// flags are tolerated, so stray dockerman arguments do not break a
	// conversion.
	Args:               cobra.MinimumNArgs(1),
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE:               runConvert,
}

func init() {
	convertCmd.Flags().BoolVarP(&convertLabels, "labels", "l", false, "Mirror Config attributes into net.unraid.docker.config labels")
	convertCmd.Flags().BoolVarP(&convertDryRun, "dry-run", "n", false, "Print the compose file without writing")
	convertCmd.Flags().BoolVar(&convertForce, "force", false, "Overwrite an existing output file")
	convertCmd.Flags().BoolVar(&convertCheck, "check", false, "Load the written file back through the compose loader")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outputPath := ""
	if len(args) >= 2 {
		outputPath = args[1]
	}

	conv, err := config.Resolve(args[0], outputPath, convertLabels)
	if err != nil {
		return err
	}

	doc, err := template.Load(conv.TemplatePath)
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}

	file, err := compose.Build(doc, compose.Options{ExtendedLabels: conv.ExtendedLabels})
	if err != nil {
		return fmt.Errorf("build compose file: %w", err)
	}

	if convertDryRun {
		rendered, err := compose.Render(file)
		if err != nil {
			return err
		}
		fmt.Print(rendered)
		return nil
	}

	if !convertForce && fileutil.Exists(conv.ComposePath) {
		return fmt.Errorf("output %s already exists (use --force to overwrite)", conv.ComposePath)
	}

	// Serialize concurrent writes to the same output file
	writeLock := lock.ForFile(conv.ComposePath)
	if err := writeLock.Acquire(); err != nil {
		return fmt.Errorf("acquire write lock: %w", err)
	}
	defer writeLock.Release()

	if err := compose.Write(file, conv.ComposePath); err != nil {
		return err
	}

	ui.Success("Wrote %s", conv.ComposePath)

	if convertCheck {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := compose.Check(ctx, conv.ComposePath); err != nil {
			return fmt.Errorf("check output: %w", err)
		}
		ui.Success("Output loads as a compose project")
	}

	return nil
}
