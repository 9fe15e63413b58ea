// Package cmd provides the CLI commands for undock-compose.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "undock-compose",
	Short: "Convert unRAID Docker templates to Docker Compose files",
	Long: `undock-compose - unRAID template converter

Turns an unRAID Docker XML application template into an equivalent
Docker Compose file: one service, one external network, with the
template's ports, paths, devices, variables, and labels mapped onto
the compose document.

COMMANDS
  convert <template> [output]   Convert a template to a compose file
    --labels, -l                Mirror Config attributes into labels
    --dry-run, -n               Print the result without writing
    --force                     Overwrite an existing output file
    --check                     Load the written file back as a project
  inspect <template>            Summarize and lint a template
  validate <compose>            Check that a compose file loads`,
	Version: version,
	// Templates sometimes get pasted with stray dockerman arguments;
	// tolerate flags this tool does not know.
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Version template
	rootCmd.SetVersionTemplate("undock-compose version {{.Version}}\n")
}
