package llm

import "context"

// Provider is one concrete generative backend. Image, when non-empty, is
// a base64-encoded JPEG each provider re-encodes into its own envelope.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt, image string) (string, error)
}
