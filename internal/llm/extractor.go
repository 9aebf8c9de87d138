// Package llm - extractor.go provides generic LLM-based structured extraction.
package llm

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It drives both the prompt text and the provider's structured-output schema.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JobDetails")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single string field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// GenaiSchema converts the extraction schema into a Gemini response schema.
func (s ExtractionSchema) GenaiSchema() *genai.Schema {
	schema := &genai.Schema{
		Type:        genai.TypeObject,
		Description: s.Name,
		Properties:  make(map[string]*genai.Schema, len(s.Fields)),
	}
	for _, field := range s.Fields {
		schema.Properties[field.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: field.Description,
		}
		if field.Required {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	return schema
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": \"string\"%s", field.Name, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Use an empty string for anything the posting does not state; do not invent values.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// --- Predefined Schemas ---

// JobDetailsSchema returns the extraction schema for job postings.
// Field names match types.JobDetails.
func JobDetailsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobDetails",
		Description: `You are an expert recruiter's assistant helping a candidate tailor an application.
Research the job posting at the URL in the input. Use the page text when it is available, and public
information about the company where the posting is silent. Extract the details below.`,
		Fields: []SchemaField{
			{
				Name:        "company_profile",
				Description: "What the company does, its products, culture and values",
				Required:    true,
			},
			{
				Name:        "job_description",
				Description: "Role title, responsibilities and requirements, as stated in the posting",
				Required:    true,
			},
			{Name: "salary_budget", Description: "Salary range or budget for the role"},
			{Name: "hr_contact", Description: "Recruiter or HR contact person"},
			{Name: "contact_email", Description: "Email address for applications or questions"},
			{Name: "previous_holder", Description: "Person who previously held this role, if public"},
			{Name: "possible_manager", Description: "Likely hiring manager for the role"},
			{Name: "team_mates", Description: "Likely team members the hire would work with"},
		},
	}
}
