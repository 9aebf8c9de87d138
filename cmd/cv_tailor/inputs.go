package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/jonathan/cv-tailor/internal/workflow"
)

// textExtensions are résumé files loaded as-is instead of being transcribed
var textExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// isTextResume reports whether path is a plain-text résumé
func isTextResume(path string) bool {
	return textExtensions[strings.ToLower(filepath.Ext(path))]
}

// jobInputs are the job flags shared by optimize and cover-letter
type jobInputs struct {
	resumePath     string
	jobURL         string
	companyProfile string
	jobDescription string
	otherDetails   string
}

func (in jobInputs) validate() error {
	if in.resumePath == "" {
		return fmt.Errorf("--resume is required")
	}
	if in.jobURL != "" && (in.companyProfile != "" || in.jobDescription != "") {
		return fmt.Errorf("--job-url cannot be combined with --company-profile/--job-description")
	}
	if in.jobURL == "" && (in.companyProfile == "" || in.jobDescription == "") {
		return fmt.Errorf("provide --job-url, or both --company-profile and --job-description")
	}
	return nil
}

// prepareSession loads the résumé and job fields into the coordinator's session,
// running import and extraction operations where needed.
func prepareSession(ctx context.Context, coord *workflow.Coordinator, printer *observability.Printer, in jobInputs) error {
	session := coord.Session()

	if isTextResume(in.resumePath) {
		data, err := os.ReadFile(in.resumePath)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		session.SetBuffer(types.KindResume, string(data))
	} else {
		res := coord.ImportResumePath(ctx, in.resumePath)
		if !res.OK() {
			return res.Err
		}
	}

	if in.jobURL != "" {
		res := coord.ExtractJobDetails(ctx, in.jobURL)
		if !res.OK() {
			return res.Err
		}
		printer.PrintJobDetails(session.Snapshot().JobDetails)
	} else {
		profile, err := readMaybeFile(in.companyProfile)
		if err != nil {
			return err
		}
		description, err := readMaybeFile(in.jobDescription)
		if err != nil {
			return err
		}
		session.SetCompanyProfile(profile)
		session.SetJobDescription(description)
	}
	if in.otherDetails != "" {
		other, err := readMaybeFile(in.otherDetails)
		if err != nil {
			return err
		}
		session.SetOtherDetails(other)
	}
	return nil
}

// readMaybeFile treats a value starting with @ as a path to read
func readMaybeFile(value string) (string, error) {
	if !strings.HasPrefix(value, "@") {
		return value, nil
	}
	path := strings.TrimPrefix(value, "@")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// finish prints the session's notifications and the outcome, returning the operation error
func finish(printer *observability.Printer, a *app, results ...workflow.Result) error {
	printer.PrintNotifications(a.notifier.List())
	for _, res := range results {
		if a.cfg.Verbose {
			printer.PrintResult(res)
		}
		if !res.OK() {
			return res.Err
		}
	}
	return nil
}
