package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"CopyForge/internal/ports"
)

// BothProvidersFailedError preserves both underlying causes so operators
// can tell "primary down" from "fallback also down" without log
// correlation.
type BothProvidersFailedError struct {
	PrimaryName  string
	Primary      error
	FallbackName string
	Fallback     error
}

func (e *BothProvidersFailedError) Error() string {
	return fmt.Sprintf("both providers failed: %s: %v; %s: %v",
		e.PrimaryName, e.Primary, e.FallbackName, e.Fallback)
}

func (e *BothProvidersFailedError) Unwrap() []error {
	return []error{e.Primary, e.Fallback}
}

// Client implements the two-attempt generation contract: the primary
// provider first, and on any primary failure one retry against the
// fallback with an equivalent request. The fallback is attempted strictly
// after the primary has definitively failed, never concurrently.
type Client struct {
	primary  Provider
	fallback Provider
	logger   *slog.Logger
}

var _ ports.TextGenerator = (*Client)(nil)

// NewClient wires the provider pair; fallback may be nil.
func NewClient(primary, fallback Provider, logger *slog.Logger) *Client {
	return &Client{primary: primary, fallback: fallback, logger: logger}
}

// Generate runs the failover chain. An empty or whitespace-only response
// is a failure, not a success with empty content.
func (c *Client) Generate(ctx context.Context, prompt, image string) (string, error) {
	if c.primary == nil {
		return "", fmt.Errorf("no primary provider configured")
	}

	text, primaryErr := c.tryProvider(ctx, c.primary, prompt, image)
	if primaryErr == nil {
		return text, nil
	}

	if c.fallback == nil {
		return "", fmt.Errorf("provider %s: %w", c.primary.Name(), primaryErr)
	}

	c.debug("primary provider failed, trying fallback",
		"primary", c.primary.Name(), "fallback", c.fallback.Name(), "error", primaryErr)

	text, fallbackErr := c.tryProvider(ctx, c.fallback, prompt, image)
	if fallbackErr == nil {
		return text, nil
	}

	return "", &BothProvidersFailedError{
		PrimaryName:  c.primary.Name(),
		Primary:      primaryErr,
		FallbackName: c.fallback.Name(),
		Fallback:     fallbackErr,
	}
}

// AnalyzeImage is a thin wrapper turning one image into a short caption.
func (c *Client) AnalyzeImage(ctx context.Context, image, prompt string) (string, error) {
	return c.Generate(ctx, prompt, image)
}

func (c *Client) tryProvider(ctx context.Context, p Provider, prompt, image string) (string, error) {
	text, err := p.Generate(ctx, prompt, image)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response body")
	}
	return text, nil
}

func (c *Client) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
