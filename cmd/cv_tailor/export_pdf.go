package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/export"
	"github.com/jonathan/cv-tailor/internal/logging"
	"github.com/jonathan/cv-tailor/internal/notify"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Print a Markdown resume or cover letter to PDF",
	Long:  "Render a Markdown document and print it to optimized_cv.pdf or cover_letter.pdf with headless Chrome. Requires Chrome/Chromium.",
	RunE:  runExportPDF,
}

var (
	exportInput string
	exportKind  string
)

func init() {
	exportPDFCmd.Flags().StringVarP(&exportInput, "in", "i", "", "Path to the Markdown document")
	exportPDFCmd.Flags().StringVarP(&exportKind, "kind", "k", "resume", "Document kind: resume or cover-letter")

	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(cmd *cobra.Command, _ []string) error {
	if exportInput == "" {
		return fmt.Errorf("--in is required")
	}
	kind, err := types.ParseDocumentKind(exportKind)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(exportInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// Printing needs no generation client
	logger, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel, Console: true})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	notifier := notify.NewManager(notify.WithTTL(cfg.NotificationTTL.Std()))
	defer notifier.Close()

	session := workflow.NewSession()
	session.SetBuffer(kind, string(content))
	coord := workflow.NewCoordinator(session, nil, notifier,
		workflow.WithPrinter(export.NewPDFPrinter(logger.Named("export"))),
		workflow.WithOutputDir(cfg.OutputDir),
		workflow.WithLogger(logger.Named("workflow")),
	)

	printer := observability.NewPrinter(os.Stdout)
	res := coord.ExportPDF(cmd.Context(), kind)
	printer.PrintNotifications(notifier.List())
	if cfg.Verbose {
		printer.PrintResult(res)
	}
	return res.Err
}

