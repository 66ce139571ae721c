package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/muurk/inlineedit/internal/config"
	"github.com/muurk/inlineedit/internal/demo"
	"github.com/muurk/inlineedit/internal/logging"
)

var errNotTerminal = errors.New("the demo needs an interactive terminal (stdin and stdout must be a TTY)")

func runDemo(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	fields, err := config.LoadFields(configPath)
	if err != nil {
		return err
	}
	logging.Info("Starting demo",
		zap.Int("fields", len(fields.Fields)),
		zap.Bool("mouse", !noMouse),
	)

	app, err := demo.NewAppModel(fields)
	if err != nil {
		return fmt.Errorf("failed to build demo page: %w", err)
	}
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !noMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("demo failed: %w", err)
	}
	return nil
}

var dumpConfigCmd = &cobra.Command{
	Use:   "dump-config",
	Short: "Print the field file as YAML",
	Long: `Print the field file the demo would load, as YAML.

Without --config this is the built-in page, which makes a good starting
point for a custom file.`,
	Example: `  # Start a custom page
  inlineedit-demo dump-config > ~/.config/inlineedit/fields.yaml

  # Check a file parses
  inlineedit-demo dump-config --config fields.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := config.LoadFields(configPath)
		if err != nil {
			return err
		}
		data, err := fields.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
