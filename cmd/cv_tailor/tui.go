package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal UI",
	Long:  "Open the full-screen terminal UI with Resume, Cover Letter and Job tabs. Logs go to --log-file only.",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg, false)
	if err != nil {
		return err
	}
	defer a.Close()

	return tui.Run(ctx, a.coord)
}
