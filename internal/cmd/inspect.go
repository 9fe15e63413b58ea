package cmd

import (
	"fmt"

	"github.com/distribution/reference"
	"github.com/spf13/cobra"

	"github.com/arifer612/undock-compose/internal/compose"
	"github.com/arifer612/undock-compose/internal/template"
	"github.com/arifer612/undock-compose/internal/ui"
)

// inspectCmd summarizes and lints a template.
var inspectCmd = &cobra.Command{
	Use:   "inspect <template>",
	Short: "Summarize and lint a template",
	Long: `Print a summary of an unRAID template and flag entries that would
fail or degrade a conversion: an unparsable repository reference,
typed Config entries without a Target, non-numeric port values.

Examples:
  undock-compose inspect plex.xml`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := template.Load(args[0])
	if err != nil {
		return fmt.Errorf("load template: %w", err)
	}

	ui.Header("Template: %s", args[0])
	ui.Field("Name", doc.Tag("Name"))
	ui.Field("Repository", doc.Tag("Repository"))
	ui.Field("Network", doc.Tag("Network"))
	ui.Field("Privileged", doc.Tag("Privileged"))
	if extra := doc.Tag("ExtraParams"); extra != "" {
		ui.Field("ExtraParams", extra)
	}
	fmt.Println()

	warnings := 0

	repo := doc.Tag("Repository")
	if repo == "" {
		ui.Warning("Repository tag is empty")
		warnings++
	} else if _, err := reference.ParseNormalizedNamed(repo); err != nil {
		ui.Warning("Repository %q is not a valid image reference: %v", repo, err)
		warnings++
	}

	if doc.Tag("Name") == "" {
		ui.Warning("Name tag is empty; the service key will be empty")
		warnings++
	}
	if doc.Tag("Network") == "" {
		ui.Warning("Network tag is empty")
		warnings++
	}

	ui.Info("Config entries: %d", len(doc.Configs))
	for _, entry := range doc.Configs {
		fmt.Printf("  %-10s %-24s -> %s\n", entry.Type, entry.Name, entry.Target)
	}
	fmt.Println()

	// Dry classification surfaces the errors convert would hit.
	if _, err := compose.Classify(doc.Configs, false); err != nil {
		ui.Error("Conversion would fail: %v", err)
		warnings++
	}

	if warnings == 0 {
		ui.Success("No issues found")
		return nil
	}
	ui.Warning("%d issue(s) found", warnings)
	return nil
}
