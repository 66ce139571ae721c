// Inlineedit-demo shows the inline edit widget in a terminal.
//
// It renders a page of headings and paragraphs. Click any text (or move to
// it with the arrow keys and press Enter) to edit it in place. Enter or the
// Y button confirms, Esc or the N button cancels, and clicking anywhere else
// keeps the change.
//
// Usage:
//
//	inlineedit-demo [flags]
//	inlineedit-demo dump-config > fields.yaml
//
// See 'inlineedit-demo --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/inlineedit/internal/logging"
	"github.com/muurk/inlineedit/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var (
	configPath string
	logLevel   string
	noMouse    bool
)

var rootCmd = &cobra.Command{
	Use:   "inlineedit-demo",
	Short: "Inline edit widget demo",
	Long: `An interactive page of inline-editable text fields.

Fields are read from a YAML file (see 'dump-config'). Without one, the
built-in page with six headings, a paragraph, a span and two multi-line
fields is shown. Edited values are not saved.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize(logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runDemo,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Field file (default: user config dir/inlineedit/fields.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides "+logging.LogLevelEnvVar)
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "Disable mouse support (keyboard only)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpConfigCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("inlineedit-demo %s\n", version.Full())
	},
}
