package domain

// Formality enumerates the brand-voice registers a domain vertical can use.
type Formality string

const (
	FormalityCasual  Formality = "casual"
	FormalityNeutral Formality = "neutral"
	FormalityPro     Formality = "pro"
)

// DomainProfile describes one industry vertical's voice, vocabulary and
// compliance rules. Loaded once by ID and treated as read-only afterwards.
type DomainProfile struct {
	ID               string    `json:"id"`
	Industry         string    `json:"industry"`
	BrandVoice       string    `json:"brandVoice"`
	Formality        Formality `json:"formality"`
	ValueProps       []string  `json:"valueProps"`
	Entities         []string  `json:"entities"`
	MandatoryPhrases []string  `json:"mandatoryPhrases"`
	BannedPhrases    []string  `json:"bannedPhrases"`
	ComplianceNotes  []string  `json:"complianceNotes"`
	KPIs             []string  `json:"kpis"`
	SampleCTAs       []string  `json:"sampleCtas"`
	HashtagSeeds     []string  `json:"hashtagSeeds"`
}

// LineBreakStyle controls how the formatter normalizes newline density.
type LineBreakStyle string

const (
	LineBreakShort  LineBreakStyle = "short"
	LineBreakNormal LineBreakStyle = "normal"
)

// PlatformTemplate describes one target channel's length, formatting and
// hashtag rules. HashtagCount of zero disables hashtags entirely.
type PlatformTemplate struct {
	ID               string         `json:"id"`
	Platform         string         `json:"platform"`
	MaxChars         int            `json:"maxChars"`
	LineBreakStyle   LineBreakStyle `json:"lineBreakStyle"`
	HashtagCount     int            `json:"hashtagCount"`
	EmojiAllowed     bool           `json:"emojiAllowed"`
	StyleHints       []string       `json:"styleHints"`
	BannedWords      []string       `json:"bannedWords"`
	MustInclude      []string       `json:"mustInclude"`
	OutputFormatHint string         `json:"outputFormatHint"`
}
