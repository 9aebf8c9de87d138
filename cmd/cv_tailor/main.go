// Package main provides the entry point for the cv_tailor command.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_tailor",
	Short: "Tailor a resume and cover letter to a job posting",
	Long: "cv_tailor extracts job details from a posting URL, imports a resume from a PDF, image or the clipboard, " +
		"and rewrites the resume or writes a cover letter for the job with Gemini. Without a subcommand it opens the interactive terminal UI.",
	SilenceUsage: true,
	RunE:         runTUI,
}

var (
	configPath     string
	apiKeyFlag     string
	outputDirFlag  string
	logFileFlag    string
	logLevelFlag   string
	useBrowserFlag bool
	verboseFlag    bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "Path to JSON or YAML config file (default $CV_TAILOR_CONFIG)")
	flags.StringVar(&apiKeyFlag, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	flags.StringVarP(&outputDirFlag, "out", "o", "", "Directory exported files are written to")
	flags.StringVar(&logFileFlag, "log-file", "", "Rotated JSON log file")
	flags.StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn or error")
	flags.BoolVar(&useBrowserFlag, "use-browser", false, "Render job pages in headless Chrome when plain HTTP returns too little text")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "Print detailed debug information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
