// Package types provides type definitions for structured data used throughout the cv-tailor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// NotFound is rendered in place of an empty secondary job field.
const NotFound = "Not found"

// JobDetails represents the structured information extracted from a job posting URL
type JobDetails struct {
	CompanyProfile  string `json:"company_profile"`
	JobDescription  string `json:"job_description"`
	SalaryBudget    string `json:"salary_budget"`
	HRContact       string `json:"hr_contact"`
	ContactEmail    string `json:"contact_email"`
	PreviousHolder  string `json:"previous_holder"`
	PossibleManager string `json:"possible_manager"`
	TeamMates       string `json:"team_mates"`
}

// DetailField is a labeled secondary field of a job posting
type DetailField struct {
	Label string
	Value string
}

// SecondaryFields returns the secondary fields in their fixed display order:
// salary, HR contact, email, previous holder, manager, teammates.
func (j *JobDetails) SecondaryFields() []DetailField {
	return []DetailField{
		{Label: "Salary Budget", Value: j.SalaryBudget},
		{Label: "HR Contact", Value: j.HRContact},
		{Label: "Contact Email", Value: j.ContactEmail},
		{Label: "Previous Holder", Value: j.PreviousHolder},
		{Label: "Possible Manager", Value: j.PossibleManager},
		{Label: "Team Mates", Value: j.TeamMates},
	}
}

// OtherDetails renders the secondary fields as labeled blocks separated by blank lines.
func (j *JobDetails) OtherDetails() string {
	fields := j.SecondaryFields()
	blocks := make([]string, 0, len(fields))
	for _, f := range fields {
		value := strings.TrimSpace(f.Value)
		if value == "" {
			value = NotFound
		}
		blocks = append(blocks, f.Label+":\n"+value)
	}
	return strings.Join(blocks, "\n\n")
}
