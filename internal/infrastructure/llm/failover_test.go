package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

type stubProvider struct {
	name string
	text string
	err  error

	calls   int
	lastImg string
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Generate(_ context.Context, _ string, image string) (string, error) {
	s.calls++
	s.lastImg = image
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func TestGenerateUsesPrimaryWhenHealthy(t *testing.T) {
	t.Parallel()

	primary := &stubProvider{name: "primary", text: "본문입니다"}
	fallback := &stubProvider{name: "fallback", text: "unused"}

	c := NewClient(primary, fallback, nil)
	got, err := c.Generate(context.Background(), "prompt", "")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "본문입니다" {
		t.Fatalf("unexpected text: %q", got)
	}
	if fallback.calls != 0 {
		t.Fatalf("fallback must not be called when primary succeeds")
	}
}

func TestGenerateFallsBackOnPrimaryFailure(t *testing.T) {
	t.Parallel()

	primary := &stubProvider{name: "primary", err: fmt.Errorf("quota exceeded")}
	fallback := &stubProvider{name: "fallback", text: "ok"}

	c := NewClient(primary, fallback, nil)
	got, err := c.Generate(context.Background(), "prompt", "img-base64")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("expected fallback text, got %q", got)
	}
	if fallback.lastImg != "img-base64" {
		t.Fatalf("fallback must receive an equivalent request, got image %q", fallback.lastImg)
	}
}

func TestGenerateTreatsEmptyResponseAsFailure(t *testing.T) {
	t.Parallel()

	primary := &stubProvider{name: "primary", text: "   \n"}
	fallback := &stubProvider{name: "fallback", text: "ok"}

	c := NewClient(primary, fallback, nil)
	got, err := c.Generate(context.Background(), "prompt", "")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "ok" {
		t.Fatalf("empty primary response must trigger the fallback, got %q", got)
	}
}

func TestGenerateCombinesBothFailures(t *testing.T) {
	t.Parallel()

	primary := &stubProvider{name: "primary", err: fmt.Errorf("primary is down")}
	fallback := &stubProvider{name: "fallback", err: fmt.Errorf("fallback also down")}

	c := NewClient(primary, fallback, nil)
	_, err := c.Generate(context.Background(), "prompt", "")
	if err == nil {
		t.Fatal("expected an error when both providers fail")
	}

	var both *BothProvidersFailedError
	if !errors.As(err, &both) {
		t.Fatalf("expected BothProvidersFailedError, got %T", err)
	}
	if !strings.Contains(err.Error(), "primary is down") || !strings.Contains(err.Error(), "fallback also down") {
		t.Fatalf("error must carry both causes: %v", err)
	}
}

func TestGenerateWithoutFallbackSurfacesPrimaryError(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("auth rejected")
	primary := &stubProvider{name: "primary", err: cause}

	c := NewClient(primary, nil, nil)
	_, err := c.Generate(context.Background(), "prompt", "")
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("error must wrap the primary cause: %v", err)
	}
}

func TestAnalyzeImageWrapsGenerate(t *testing.T) {
	t.Parallel()

	primary := &stubProvider{name: "primary", text: "테라스가 보이는 카페 내부"}

	c := NewClient(primary, nil, nil)
	got, err := c.AnalyzeImage(context.Background(), "img-base64", "describe")
	if err != nil {
		t.Fatalf("AnalyzeImage error: %v", err)
	}
	if got != "테라스가 보이는 카페 내부" {
		t.Fatalf("unexpected caption: %q", got)
	}
	if primary.lastImg != "img-base64" {
		t.Fatalf("image must be forwarded, got %q", primary.lastImg)
	}
}
