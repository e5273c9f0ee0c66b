package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"google.golang.org/genai"

	"CopyForge/internal/config"
)

// GeminiProvider is the primary generative backend.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider builds a client from configuration.
func NewGeminiProvider(ctx context.Context, cfg config.GeminiConfig) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("new gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = "gemini-2.5-flash"
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &GeminiProvider{client: client, model: model, timeout: timeout}, nil
}

// Name identifies the provider in failover errors.
func (g *GeminiProvider) Name() string {
	return "gemini"
}

// Generate sends the prompt (plus the optional inline image) and extracts
// the first candidate's text.
func (g *GeminiProvider) Generate(ctx context.Context, prompt, image string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents, err := buildContents(prompt, image)
	if err != nil {
		return "", err
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	candidate := result.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned an empty candidate")
	}

	return candidate.Content.Parts[0].Text, nil
}

func buildContents(prompt, image string) ([]*genai.Content, error) {
	if image == "" {
		return genai.Text(prompt), nil
	}

	data, err := base64.StdEncoding.DecodeString(image)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(data, "image/jpeg"),
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil
}
