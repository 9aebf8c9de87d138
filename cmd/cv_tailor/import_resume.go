package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

var importResumeCmd = &cobra.Command{
	Use:   "import-resume",
	Short: "Convert a PDF or image resume, or resume text on the clipboard, into Markdown",
	Long:  "Transcribe a PDF or image resume (--file) or reformat resume text from the clipboard (--clipboard) and save it as optimized_cv.md.",
	RunE:  runImportResume,
}

var (
	importFile      string
	importClipboard bool
)

func init() {
	importResumeCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to a PDF or image resume")
	importResumeCmd.Flags().BoolVar(&importClipboard, "clipboard", false, "Read resume text from the clipboard")

	rootCmd.AddCommand(importResumeCmd)
}

func runImportResume(cmd *cobra.Command, _ []string) error {
	if (importFile == "") == !importClipboard {
		return fmt.Errorf("provide exactly one of --file or --clipboard")
	}
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, cfg, true)
	if err != nil {
		return err
	}
	defer a.Close()

	printer := observability.NewPrinter(os.Stdout)
	printer.SetVerbose(cfg.Verbose)

	var res workflow.Result
	if importClipboard {
		res = a.coord.ImportResumeClipboard(ctx)
	} else {
		res = a.coord.ImportResumePath(ctx, importFile)
	}
	if !res.OK() {
		return finish(printer, a, res)
	}

	saved := a.coord.ExportFile(types.KindResume)
	if err := finish(printer, a, res, saved); err != nil {
		return err
	}
	printer.PrintDocument(a.coord.Session().Buffer(types.KindResume))
	return nil
}
