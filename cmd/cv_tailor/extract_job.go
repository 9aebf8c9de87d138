package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/observability"
)

var extractJobCmd = &cobra.Command{
	Use:   "extract-job",
	Short: "Extract company profile, job description and contact details from a job posting URL",
	RunE:  runExtractJob,
}

var (
	extractURL  string
	extractJSON bool
)

func init() {
	extractJobCmd.Flags().StringVarP(&extractURL, "url", "u", "", "Job posting URL")
	extractJobCmd.Flags().BoolVar(&extractJSON, "json", false, "Print the job details as JSON")

	rootCmd.AddCommand(extractJobCmd)
}

func runExtractJob(cmd *cobra.Command, _ []string) error {
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
	res := a.coord.ExtractJobDetails(ctx, extractURL)
	if err := finish(printer, a, res); err != nil {
		return err
	}

	details := a.coord.Session().Snapshot().JobDetails
	if !extractJSON {
		printer.PrintJobDetails(details)
		return nil
	}

	jsonBytes, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
