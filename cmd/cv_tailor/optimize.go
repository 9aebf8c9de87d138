package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Rewrite a resume for a job posting",
	Long: "Rewrite a resume for a job posting and save it as optimized_cv.md in the output directory. " +
		"The resume may be Markdown, plain text, PDF or an image; the job comes from --job-url or from " +
		"--company-profile and --job-description (prefix a value with @ to read it from a file).",
	RunE: runOptimize,
}

var optimizeInputs jobInputs

func init() {
	addJobFlags(optimizeCmd, &optimizeInputs)
	rootCmd.AddCommand(optimizeCmd)
}

// addJobFlags registers the résumé and job flags shared by optimize and cover-letter
func addJobFlags(cmd *cobra.Command, in *jobInputs) {
	cmd.Flags().StringVarP(&in.resumePath, "resume", "r", "", "Path to resume (.md, .txt, .pdf or image)")
	cmd.Flags().StringVarP(&in.jobURL, "job-url", "u", "", "Job posting URL to extract details from")
	cmd.Flags().StringVar(&in.companyProfile, "company-profile", "", "Company profile text, or @file")
	cmd.Flags().StringVar(&in.jobDescription, "job-description", "", "Job description text, or @file")
	cmd.Flags().StringVar(&in.otherDetails, "other-details", "", "Other job details (contacts, salary), or @file")
}

func runOptimize(cmd *cobra.Command, _ []string) error {
	return runTailoring(cmd, optimizeInputs, types.KindResume)
}

// runTailoring prepares the session, runs the generation for kind and saves the result
func runTailoring(cmd *cobra.Command, in jobInputs, kind types.DocumentKind) error {
	if err := in.validate(); err != nil {
		return err
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

	if err := prepareSession(ctx, a.coord, printer, in); err != nil {
		printer.PrintNotifications(a.notifier.List())
		return err
	}

	var res workflow.Result
	if kind == types.KindCoverLetter {
		res = a.coord.GenerateCoverLetter(ctx)
	} else {
		res = a.coord.OptimizeResume(ctx)
	}
	if !res.OK() {
		return finish(printer, a, res)
	}

	saved := a.coord.ExportFile(kind)
	if err := finish(printer, a, res, saved); err != nil {
		return err
	}
	printer.PrintDocument(a.coord.Session().Buffer(kind))
	return nil
}
