// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// OperationStatus is the state of the workflow coordinator. Only Idle is stable;
// every other value means exactly one long-running operation is in flight.
type OperationStatus int

const (
	StatusIdle OperationStatus = iota
	StatusExtractingJob
	StatusParsingResume
	StatusOptimizing
	StatusGeneratingCoverLetter
)

func (s OperationStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusExtractingJob:
		return "extracting_job"
	case StatusParsingResume:
		return "parsing_resume"
	case StatusOptimizing:
		return "optimizing"
	case StatusGeneratingCoverLetter:
		return "generating_cover_letter"
	default:
		return "unknown"
	}
}

// Busy reports whether an operation is in flight
func (s OperationStatus) Busy() bool {
	return s != StatusIdle
}

// Label is the progress text shown while the status is active
func (s OperationStatus) Label() string {
	switch s {
	case StatusExtractingJob:
		return "Extracting job details..."
	case StatusParsingResume:
		return "Parsing resume..."
	case StatusOptimizing:
		return "Optimizing resume..."
	case StatusGeneratingCoverLetter:
		return "Writing cover letter..."
	default:
		return ""
	}
}
