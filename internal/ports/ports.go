package ports

import (
	"context"

	"CopyForge/internal/domain"
)

// ProfileStore resolves immutable configuration documents by ID.
type ProfileStore interface {
	LoadDomainProfile(domainID string) (domain.DomainProfile, error)
	LoadPlatformTemplate(platformID string) (domain.PlatformTemplate, error)
}

// TextGenerator pushes a composed prompt to a generative text provider.
// Image, when non-empty, is a base64-encoded JPEG sent alongside the prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, image string) (string, error)
}

// ResearchSource supplies a pre-formatted reference text block the prompt
// composer appends verbatim for grounding.
type ResearchSource interface {
	Fetch(ctx context.Context, query string) (string, error)
}

// RecordRepository persists generation records for audit and history.
type RecordRepository interface {
	SaveRecord(ctx context.Context, record domain.GenerationRecord) error
	RecentRecords(ctx context.Context, domainID string, limit int) ([]domain.GenerationRecord, error)
}

// Notifier streams finished copy to an operator channel (e.g. Telegram).
type Notifier interface {
	PublishResult(ctx context.Context, message string) error
}
