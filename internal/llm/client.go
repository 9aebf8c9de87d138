package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Attachment is a binary payload sent alongside the prompt.
// Data holds the base64 encoding produced by the ingestion adapter.
type Attachment struct {
	MIMEType string
	Data     string
}

// Request describes a single call to the generation service
type Request struct {
	Operation  string            // Operation kind, used for logging and errors
	Prompt     string            // Free-text or templated prompt
	Tier       ModelTier         // Model tier to route the request to
	Attachment *Attachment       // Optional binary payload
	Schema     *ExtractionSchema // Optional structured-output schema; response is JSON when set
}

// Response is the generated text (or JSON document when a schema was requested)
type Response struct {
	Text  string
	Model string
}

// Client is an abstraction over LLM providers
type Client interface {
	// Generate performs one request. Empty output is reported as *EmptyResponseError.
	Generate(ctx context.Context, req Request) (*Response, error)
	// GetModel returns the underlying provider model for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported LLM provider %q", config.Provider)
	}
}

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// Generate sends the request to Gemini and returns the concatenated text parts
func (c *GeminiClient) Generate(ctx context.Context, req Request) (*Response, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return nil, &TransportError{Operation: req.Operation, Message: fmt.Sprintf("no model configured for tier %s", req.Tier)}
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(c.config.Temperature)
	if req.Schema != nil {
		model.ResponseMIMEType = "application/json"
		model.ResponseSchema = req.Schema.GenaiSchema()
	}

	parts := []genai.Part{genai.Text(req.Prompt)}
	if req.Attachment != nil {
		blob, err := toBlob(req.Attachment)
		if err != nil {
			return nil, &TransportError{Operation: req.Operation, Message: "invalid attachment", Cause: err}
		}
		parts = append(parts, blob)
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, &TransportError{Operation: req.Operation, Message: "failed to generate content", Cause: err}
	}

	text, err := extractTextFromResponse(resp)
	if err != nil {
		return nil, &EmptyResponseError{Operation: req.Operation, Reason: err.Error()}
	}
	if req.Schema != nil {
		text = CleanJSONBlock(text)
	}
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyResponseError{Operation: req.Operation, Reason: "blank text"}
	}

	return &Response{Text: text, Model: modelName}, nil
}

// GetModel returns the model name for a tier
func (c *GeminiClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// toBlob decodes the base64 attachment into an inline Gemini blob
func toBlob(a *Attachment) (genai.Blob, error) {
	if a.MIMEType == "" {
		return genai.Blob{}, fmt.Errorf("attachment MIME type is empty")
	}
	data, err := base64.StdEncoding.DecodeString(a.Data)
	if err != nil {
		return genai.Blob{}, fmt.Errorf("attachment is not valid base64: %w", err)
	}
	return genai.Blob{MIMEType: a.MIMEType, Data: data}, nil
}

// extractTextFromResponse extracts text from Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}
