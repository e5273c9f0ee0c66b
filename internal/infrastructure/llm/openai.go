package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"CopyForge/internal/config"
)

const fallbackSystemPrompt = "당신은 한국어 SNS 마케팅 카피라이터입니다. 지시된 형식과 규칙을 정확히 지켜 작성하세요."

// OpenAIProvider is the fallback backend, speaking the OpenAI-compatible
// chat-completions protocol over plain HTTP.
type OpenAIProvider struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider builds a client from configuration.
func NewOpenAIProvider(cfg config.OpenAIConfig) *OpenAIProvider {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIProvider{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		apiKey:   cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name identifies the provider in failover errors.
func (o *OpenAIProvider) Name() string {
	return "openai"
}

// Generate posts a chat-completion request; the optional image is
// re-encoded into the data-URI envelope this protocol expects.
func (o *OpenAIProvider) Generate(ctx context.Context, prompt, image string) (string, error) {
	if o.apiKey == "" || o.endpoint == "" || o.model == "" {
		return "", fmt.Errorf("openai provider misconfigured")
	}

	body, err := json.Marshal(map[string]any{
		"model": o.model,
		"messages": []map[string]any{
			{"role": "system", "content": fallbackSystemPrompt},
			{"role": "user", "content": userContent(prompt, image)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openai error %s: %s", resp.Status, strings.TrimSpace(string(payload)))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// userContent returns a plain string for text-only calls and the
// multimodal part array when an image rides along.
func userContent(prompt, image string) any {
	if image == "" {
		return prompt
	}
	return []map[string]any{
		{"type": "text", "text": prompt},
		{
			"type": "image_url",
			"image_url": map[string]string{
				"url": "data:image/jpeg;base64," + image,
			},
		},
	}
}
