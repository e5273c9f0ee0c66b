package postprocess

import (
	"context"
	"strings"
	"unicode"
)

// HashtagRequest carries everything the hashtag sub-generator works from.
type HashtagRequest struct {
	Seeds     []string
	Region    string
	MenuNames []string
	Keywords  []string
	Intent    string
	Limit     int
}

// HashtagGenerator is the post-processor's one external dependency; the
// rich generator may be swapped out, and any failure falls back to the
// simple deterministic strategy under the same cap and dedup invariants.
type HashtagGenerator interface {
	Generate(ctx context.Context, req HashtagRequest) ([]string, error)
}

// defaultSynonymGroups collapses near-identical tags so only the
// first-encountered member of each group survives. Data-driven: domain
// packs may extend it via ProcessorConfig.
func defaultSynonymGroups() [][]string {
	return [][]string{
		{"맛집", "맛스타그램", "먹스타그램", "맛집추천"},
		{"일상", "데일리", "daily"},
		{"카페", "cafe", "커피숍"},
		{"여행", "트래블", "travel"},
		{"운동", "헬스", "워크아웃"},
		{"피부관리", "피부케어", "스킨케어"},
	}
}

// defaultRegionMarkers lists well-known area names that earn the
// region+맛집 compound tag.
func defaultRegionMarkers() []string {
	return []string{"강남", "홍대", "성수", "잠실", "해운대", "전포", "연남", "판교"}
}

// StaticGenerator is the built-in rich hashtag generator: candidates from
// domain seeds, region tags, menu names, keywords and intent, normalized,
// deduplicated, synonym-collapsed and capped. Deterministic for identical
// inputs.
type StaticGenerator struct {
	synonyms      [][]string
	regionMarkers map[string]struct{}
}

var _ HashtagGenerator = (*StaticGenerator)(nil)

// NewStaticGenerator wires synonym groups and region markers; nil slices
// get the defaults.
func NewStaticGenerator(synonyms [][]string, regionMarkers []string) *StaticGenerator {
	if synonyms == nil {
		synonyms = defaultSynonymGroups()
	}
	if regionMarkers == nil {
		regionMarkers = defaultRegionMarkers()
	}

	markers := make(map[string]struct{}, len(regionMarkers))
	for _, m := range regionMarkers {
		markers[normalizeTag(m)] = struct{}{}
	}

	return &StaticGenerator{synonyms: synonyms, regionMarkers: markers}
}

// Generate builds the capped candidate list. Candidate order is fixed:
// region (plus compound), menu names, keywords, intent, then domain seeds
// as filler.
func (g *StaticGenerator) Generate(_ context.Context, req HashtagRequest) ([]string, error) {
	if req.Limit <= 0 {
		return []string{}, nil
	}

	candidates := make([]string, 0, len(req.Seeds)+len(req.MenuNames)+len(req.Keywords)+3)

	if region := normalizeTag(req.Region); region != "" {
		candidates = append(candidates, region)
		if _, known := g.regionMarkers[region]; known {
			candidates = append(candidates, region+"맛집")
		}
	}

	candidates = append(candidates, req.MenuNames...)
	candidates = append(candidates, req.Keywords...)
	if req.Intent != "" {
		candidates = append(candidates, req.Intent)
	}
	candidates = append(candidates, req.Seeds...)

	return capTags(candidates, g.synonyms, req.Limit), nil
}

// fallbackHashtags is the degraded strategy used when the configured
// generator fails: seeds plus region plus keywords, same normalization,
// dedup and cap, no randomness.
func fallbackHashtags(req HashtagRequest) []string {
	if req.Limit <= 0 {
		return []string{}
	}

	candidates := make([]string, 0, len(req.Seeds)+len(req.Keywords)+1)
	candidates = append(candidates, req.Seeds...)
	if req.Region != "" {
		candidates = append(candidates, req.Region)
	}
	candidates = append(candidates, req.Keywords...)

	return capTags(candidates, defaultSynonymGroups(), req.Limit)
}

// capTags normalizes, exact-deduplicates, synonym-collapses and truncates
// the candidate list, prefixing each survivor with '#'.
func capTags(candidates []string, synonyms [][]string, limit int) []string {
	groupOf := map[string]int{}
	for i, group := range synonyms {
		for _, member := range group {
			groupOf[normalizeTag(member)] = i
		}
	}

	seen := map[string]struct{}{}
	usedGroup := map[int]struct{}{}
	tags := make([]string, 0, limit)

	for _, candidate := range candidates {
		tag := normalizeTag(candidate)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		if group, ok := groupOf[tag]; ok {
			if _, taken := usedGroup[group]; taken {
				continue
			}
			usedGroup[group] = struct{}{}
		}

		seen[tag] = struct{}{}
		tags = append(tags, "#"+tag)
		if len(tags) >= limit {
			break
		}
	}

	return tags
}

// normalizeTag strips whitespace and anything that is not a letter, a
// digit or Hangul, then lowercases ASCII.
func normalizeTag(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case isHangul(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isHangul(r rune) bool {
	switch {
	case r >= 0xAC00 && r <= 0xD7A3: // syllables
		return true
	case r >= 0x3131 && r <= 0x318E: // compatibility jamo
		return true
	}
	return false
}
