package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-tailor/internal/types"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Write a cover letter from a resume for a job posting",
	Long:  "Write a cover letter from a resume for a job posting and save it as cover_letter.md in the output directory.",
	RunE:  runCoverLetter,
}

var coverLetterInputs jobInputs

func init() {
	addJobFlags(coverLetterCmd, &coverLetterInputs)
	rootCmd.AddCommand(coverLetterCmd)
}

func runCoverLetter(cmd *cobra.Command, _ []string) error {
	return runTailoring(cmd, coverLetterInputs, types.KindCoverLetter)
}
