package postprocess

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"CopyForge/internal/domain"
)

func testDomain() domain.DomainProfile {
	return domain.DomainProfile{
		ID:            "skincare",
		Industry:      "피부관리샵",
		BannedPhrases: []string{"치료"},
		HashtagSeeds:  []string{"피부관리", "스킨케어", "속건조", "수분관리"},
	}
}

func testPlatform() domain.PlatformTemplate {
	return domain.PlatformTemplate{
		ID:             "blog",
		Platform:       "블로그",
		MaxChars:       500,
		LineBreakStyle: domain.LineBreakShort,
		HashtagCount:   15,
	}
}

func TestBannedPhraseRedaction(t *testing.T) {
	t.Parallel()

	p := NewProcessor(ProcessorConfig{})
	result := p.Run(context.Background(), "여드름 치료에 효과적입니다", Options{
		Domain:   testDomain(),
		Platform: testPlatform(),
	})

	if strings.Contains(result.Output, "치료") {
		t.Fatalf("banned phrase survived: %q", result.Output)
	}
	if !strings.Contains(result.Output, "**") {
		t.Fatalf("expected asterisk run in output, got %q", result.Output)
	}

	var redactionWarnings int
	for _, w := range result.Warnings {
		if strings.Contains(w, "치료") {
			redactionWarnings++
		}
	}
	if redactionWarnings != 1 {
		t.Fatalf("expected exactly one redaction warning naming the phrase, got %d (%v)", redactionWarnings, result.Warnings)
	}
}

func TestRedactionLengthMatchesMatch(t *testing.T) {
	t.Parallel()

	text, hits := redactBanned("오늘 BEST 후기입니다", []string{"best"})
	if len(hits) != 1 {
		t.Fatalf("expected one hit, got %v", hits)
	}
	if !strings.Contains(text, "****") {
		t.Fatalf("expected four asterisks for BEST, got %q", text)
	}
}

func TestRedactionWordBoundary(t *testing.T) {
	t.Parallel()

	// "best" inside a longer ASCII word must not be redacted.
	text, hits := redactBanned("bestseller 코너", []string{"best"})
	if len(hits) != 0 {
		t.Fatalf("expected no hits inside a longer word, got %v (%q)", hits, text)
	}
}

func TestBannedUnionWithPlatformWords(t *testing.T) {
	t.Parallel()

	platform := testPlatform()
	platform.BannedWords = []string{"완치"}

	p := NewProcessor(ProcessorConfig{})
	result := p.Run(context.Background(), "완치를 보장합니다", Options{
		Domain:   testDomain(),
		Platform: platform,
	})

	if strings.Contains(result.Output, "완치") {
		t.Fatalf("platform banned word survived: %q", result.Output)
	}
}

func TestMandatoryElementInsertedFirstMissingOnly(t *testing.T) {
	t.Parallel()

	platform := testPlatform()
	platform.MustInclude = []string{"저장 유도", "위치 안내"}

	p := NewProcessor(ProcessorConfig{})
	result := p.Run(context.Background(), "수분 관리 꿀팁을 소개합니다.", Options{
		Domain:   testDomain(),
		Platform: platform,
	})

	if !strings.Contains(result.Output, "저장해 두세요") {
		t.Fatalf("expected sentence for first missing label, got %q", result.Output)
	}
	if strings.Contains(result.Output, "지도를 확인해 주세요") {
		t.Fatalf("second missing label must not be fixed in the same call: %q", result.Output)
	}

	var mandatoryWarnings int
	for _, w := range result.Warnings {
		if strings.Contains(w, "저장 유도") {
			mandatoryWarnings++
		}
	}
	if mandatoryWarnings != 1 {
		t.Fatalf("expected one warning naming the fixed label, got %v", result.Warnings)
	}
}

func TestMandatoryUnknownLabelGetsGenericSentence(t *testing.T) {
	t.Parallel()

	text, fixed := ensureMandatory("본문입니다.", []string{"주차 안내"}, defaultSentences())
	if fixed != "주차 안내" {
		t.Fatalf("expected the unknown label to be fixed, got %q", fixed)
	}
	if !strings.Contains(text, "주차 안내") {
		t.Fatalf("generic sentence must name the label, got %q", text)
	}
}

func TestHashtagsDisabledWhenCountZero(t *testing.T) {
	t.Parallel()

	platform := testPlatform()
	platform.HashtagCount = 0

	p := NewProcessor(ProcessorConfig{})
	result := p.Run(context.Background(), "본문", Options{
		Domain:   testDomain(),
		Platform: platform,
		Region:   "강남",
		Keywords: []string{"피부", "보습"},
	})

	if len(result.Hashtags) != 0 {
		t.Fatalf("expected no hashtags, got %v", result.Hashtags)
	}
}

func TestHashtagCapDedupAndRegion(t *testing.T) {
	t.Parallel()

	d := testDomain()
	d.HashtagSeeds = make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		d.HashtagSeeds = append(d.HashtagSeeds, fmt.Sprintf("시드%d", i))
	}

	p := NewProcessor(ProcessorConfig{})
	result := p.Run(context.Background(), "본문", Options{
		Domain:   d,
		Platform: testPlatform(),
		Region:   "강남",
	})

	if len(result.Hashtags) > 15 {
		t.Fatalf("expected at most 15 hashtags, got %d", len(result.Hashtags))
	}

	seen := map[string]bool{}
	var hasRegion bool
	for _, tag := range result.Hashtags {
		if seen[tag] {
			t.Fatalf("duplicate hashtag %s", tag)
		}
		seen[tag] = true
		if strings.Contains(tag, "강남") {
			hasRegion = true
		}
	}
	if !hasRegion {
		t.Fatalf("expected a region-derived tag, got %v", result.Hashtags)
	}
}

func TestHashtagSynonymCollapse(t *testing.T) {
	t.Parallel()

	gen := NewStaticGenerator(nil, nil)
	tags, err := gen.Generate(context.Background(), HashtagRequest{
		Seeds:    []string{"맛집", "먹스타그램", "맛스타그램", "카페", "cafe"},
		Keywords: []string{"데이트"},
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := []string{"#데이트", "#맛집", "#카페"}
	if len(tags) != len(want) {
		t.Fatalf("expected %v, got %v", want, tags)
	}
	for i, tag := range want {
		if tags[i] != tag {
			t.Fatalf("expected %v, got %v", want, tags)
		}
	}
}

func TestHashtagRegionCompoundForKnownMarker(t *testing.T) {
	t.Parallel()

	gen := NewStaticGenerator(nil, nil)
	tags, err := gen.Generate(context.Background(), HashtagRequest{Region: "강남", Limit: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	joined := strings.Join(tags, " ")
	if !strings.Contains(joined, "#강남맛집") {
		t.Fatalf("expected compound tag for known marker, got %v", tags)
	}
}

func TestHashtagNormalization(t *testing.T) {
	t.Parallel()

	if got := normalizeTag(" Cafe Tour! "); got != "cafetour" {
		t.Fatalf("unexpected normalization: %q", got)
	}
	if got := normalizeTag("성수동#카페"); got != "성수동카페" {
		t.Fatalf("unexpected normalization: %q", got)
	}
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, HashtagRequest) ([]string, error) {
	return nil, fmt.Errorf("generator offline")
}

func TestHashtagFallbackKeepsInvariants(t *testing.T) {
	t.Parallel()

	platform := testPlatform()
	platform.HashtagCount = 3

	p := NewProcessor(ProcessorConfig{Hashtags: failingGenerator{}})
	result := p.Run(context.Background(), "본문", Options{
		Domain:   testDomain(),
		Platform: platform,
		Region:   "강남",
		Keywords: []string{"보습"},
	})

	if len(result.Hashtags) > 3 {
		t.Fatalf("fallback broke the cap: %v", result.Hashtags)
	}
	seen := map[string]bool{}
	for _, tag := range result.Hashtags {
		if seen[tag] {
			t.Fatalf("fallback produced duplicate %s", tag)
		}
		seen[tag] = true
	}

	var fallbackWarned bool
	for _, w := range result.Warnings {
		if strings.Contains(w, "해시태그") {
			fallbackWarned = true
		}
	}
	if !fallbackWarned {
		t.Fatalf("expected a fallback warning, got %v", result.Warnings)
	}
}

func TestTruncationAtWordBoundary(t *testing.T) {
	t.Parallel()

	platform := testPlatform()
	platform.MaxChars = 30

	words := strings.Repeat("수분크림 추천 ", 10)
	p := NewProcessor(ProcessorConfig{})
	result := p.Run(context.Background(), words, Options{
		Domain:   testDomain(),
		Platform: platform,
	})

	if got := utf8.RuneCountInString(result.Output); got > 30 {
		t.Fatalf("output exceeds limit: %d runes", got)
	}
	if !strings.HasSuffix(result.Output, ellipsis) {
		t.Fatalf("expected trailing ellipsis, got %q", result.Output)
	}

	// Everything before the marker must be a whole-word prefix of the input.
	prefix := strings.TrimSuffix(result.Output, ellipsis)
	if !strings.HasPrefix(words, prefix+" ") && !strings.HasPrefix(words, prefix) {
		t.Fatalf("truncation split the input unexpectedly: %q", prefix)
	}
	if strings.HasSuffix(prefix, "수분크") || strings.HasSuffix(prefix, "추") {
		t.Fatalf("truncation cut mid-word: %q", prefix)
	}

	var truncWarned bool
	for _, w := range result.Warnings {
		if strings.Contains(w, "말줄임") {
			truncWarned = true
		}
	}
	if !truncWarned {
		t.Fatalf("expected truncation warning, got %v", result.Warnings)
	}
}

func TestShortStyleCollapsesNewlineRuns(t *testing.T) {
	t.Parallel()

	platform := testPlatform()
	platform.LineBreakStyle = domain.LineBreakShort

	got := formatForPlatform("첫 줄\n\n\n\n둘째 줄", platform)
	if got != "첫 줄\n\n둘째 줄" {
		t.Fatalf("unexpected short-style formatting: %q", got)
	}
}

func TestNormalStylePromotesSingleNewlines(t *testing.T) {
	t.Parallel()

	platform := testPlatform()
	platform.ID = "custom"
	platform.LineBreakStyle = domain.LineBreakNormal

	got := formatForPlatform("첫 문단\n둘째 문단", platform)
	if got != "첫 문단\n\n둘째 문단" {
		t.Fatalf("unexpected normal-style formatting: %q", got)
	}
}

func TestThreadsCollapsesDoubleNewlines(t *testing.T) {
	t.Parallel()

	platform := domain.PlatformTemplate{
		ID:             "threads",
		MaxChars:       500,
		LineBreakStyle: domain.LineBreakShort,
	}

	got := formatForPlatform("본문\n\n답글1\n\n답글2", platform)
	if got != "본문\n답글1\n답글2" {
		t.Fatalf("unexpected threads formatting: %q", got)
	}
}

func TestInstagramCollapsesSpaceRuns(t *testing.T) {
	t.Parallel()

	platform := domain.PlatformTemplate{
		ID:             "instagram",
		MaxChars:       500,
		LineBreakStyle: domain.LineBreakShort,
	}

	got := formatForPlatform("오늘의   카페\t\t투어", platform)
	if got != "오늘의 카페 투어" {
		t.Fatalf("unexpected instagram formatting: %q", got)
	}
}

func TestIdempotentOnOwnOutput(t *testing.T) {
	t.Parallel()

	platform := testPlatform()
	platform.MustInclude = []string{"저장 유도"}

	opts := Options{
		Domain:   testDomain(),
		Platform: platform,
		Region:   "강남",
	}

	p := NewProcessor(ProcessorConfig{})
	first := p.Run(context.Background(), "여드름 치료에 좋은 수분 관리법을 소개합니다.", opts)
	second := p.Run(context.Background(), first.Output, opts)

	for _, w := range second.Warnings {
		if strings.Contains(w, "금지 표현") {
			t.Fatalf("second run found a banned phrase again: %v", second.Warnings)
		}
		if strings.Contains(w, "필수 요소") {
			t.Fatalf("second run re-inserted a mandatory element: %v", second.Warnings)
		}
	}
}
