package domain

import "time"

// Brand carries optional advertiser overrides layered on top of the domain
// profile's defaults.
type Brand struct {
	Name       string   `json:"name"`
	Tone       string   `json:"tone"`
	Keywords   []string `json:"keywords"`
	VoiceHints []string `json:"voiceHints"`
}

// Content bundles the user-supplied raw material one generation works from.
type Content struct {
	Notes         string   `json:"notes"`
	Keywords      []string `json:"keywords"`
	MenuNames     []string `json:"menuNames"`
	Region        string   `json:"region"`
	Intent        string   `json:"intent"`
	Link          string   `json:"link"`
	ImageCaptions []string `json:"imageCaptions"`
}

// GenerationRequest is created per call and discarded after the response.
type GenerationRequest struct {
	DomainID        string                       `json:"domainId"`
	PlatformID      string                       `json:"platformId"`
	Brand           *Brand                       `json:"brand,omitempty"`
	Content         Content                      `json:"content"`
	Images          []string                     `json:"images,omitempty"` // base64-encoded
	PluginIDs       []string                     `json:"pluginIds,omitempty"`
	PluginConfigs   map[string]map[string]string `json:"pluginConfigs,omitempty"`
	ResearchContext string                       `json:"researchContext,omitempty"`
	ResearchQuery   string                       `json:"researchQuery,omitempty"`
}

// PostProcessResult is the final shape handed back to the caller: output
// text, capped hashtag list, and one human-readable warning per automatic
// correction applied.
type PostProcessResult struct {
	Output   string   `json:"output"`
	Hashtags []string `json:"hashtags"`
	Warnings []string `json:"warnings"`
}

// GenerationRecord persisted to Postgres for audit; persistence is
// best-effort and never affects the response.
type GenerationRecord struct {
	ID         string
	DomainID   string
	PlatformID string
	Prompt     string
	Output     string
	Hashtags   []string
	Warnings   []string
	CreatedAt  time.Time
}
