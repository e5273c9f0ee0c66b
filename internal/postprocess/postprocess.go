package postprocess

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"CopyForge/internal/domain"
)

// Options parameterizes one post-process pass.
type Options struct {
	Domain    domain.DomainProfile
	Platform  domain.PlatformTemplate
	Region    string
	Keywords  []string
	MenuNames []string
	Intent    string
	Link      string
}

// ProcessorConfig makes the lookup tables configuration instead of code:
// domain packs can extend synonym groups, region markers and must-include
// sentences without touching the pipeline.
type ProcessorConfig struct {
	Hashtags             HashtagGenerator
	SynonymGroups        [][]string
	RegionMarkers        []string
	MustIncludeSentences map[string]string
	Logger               *slog.Logger
}

// Processor applies the five compliance stages in strict order:
// banned-phrase redaction, mandatory-element check, hashtag generation,
// length truncation, platform formatting. Run never fails; every
// degradation becomes a warning on the result.
type Processor struct {
	hashtags  HashtagGenerator
	sentences map[string]string
	logger    *slog.Logger
}

// NewProcessor fills zero-value config fields with the built-in defaults.
func NewProcessor(cfg ProcessorConfig) *Processor {
	if cfg.Hashtags == nil {
		cfg.Hashtags = NewStaticGenerator(cfg.SynonymGroups, cfg.RegionMarkers)
	}
	if cfg.MustIncludeSentences == nil {
		cfg.MustIncludeSentences = defaultSentences()
	}
	return &Processor{
		hashtags:  cfg.Hashtags,
		sentences: cfg.MustIncludeSentences,
		logger:    cfg.Logger,
	}
}

// Run executes the staged pipeline on raw model output. Stage order is
// fixed: later stages assume the exact output of earlier ones (length
// truncation must see post-filter text, not raw model output).
func (p *Processor) Run(ctx context.Context, raw string, opts Options) domain.PostProcessResult {
	text := raw
	var warnings []string

	banned := unionPhrases(opts.Domain.BannedPhrases, opts.Platform.BannedWords)
	redacted, hits := redactBanned(text, banned)
	if len(hits) > 0 {
		text = redacted
		warnings = append(warnings, fmt.Sprintf("금지 표현을 가림 처리했습니다: %s", strings.Join(hits, ", ")))
	}

	extended, fixedLabel := ensureMandatory(text, opts.Platform.MustInclude, p.sentences)
	if fixedLabel != "" {
		text = extended
		warnings = append(warnings, fmt.Sprintf("필수 요소가 빠져 문장을 보충했습니다: %s", fixedLabel))
	}

	hashtags := p.generateHashtags(ctx, opts, &warnings)

	if truncated, cut := truncateAtWordBoundary(text, opts.Platform.MaxChars); cut {
		text = truncated
		warnings = append(warnings, fmt.Sprintf("최대 길이 %d자를 넘어 말줄임 처리했습니다", opts.Platform.MaxChars))
	}

	text = formatForPlatform(text, opts.Platform)

	return domain.PostProcessResult{
		Output:   text,
		Hashtags: hashtags,
		Warnings: warnings,
	}
}

// generateHashtags is the only stage with an external dependency. A zero
// hashtag ceiling disables hashtags outright; a generator failure drops
// to the deterministic fallback under the same invariants.
func (p *Processor) generateHashtags(ctx context.Context, opts Options, warnings *[]string) []string {
	if opts.Platform.HashtagCount <= 0 {
		return []string{}
	}

	req := HashtagRequest{
		Seeds:     opts.Domain.HashtagSeeds,
		Region:    opts.Region,
		MenuNames: opts.MenuNames,
		Keywords:  opts.Keywords,
		Intent:    opts.Intent,
		Limit:     opts.Platform.HashtagCount,
	}

	tags, err := p.hashtags.Generate(ctx, req)
	if err != nil {
		p.debug("hashtag generator failed, using fallback", "error", err)
		*warnings = append(*warnings, "해시태그 생성기가 실패해 기본 전략으로 대체했습니다")
		return fallbackHashtags(req)
	}

	return tags
}

func (p *Processor) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}
