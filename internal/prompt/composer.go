package prompt

import (
	"fmt"
	"strings"

	"CopyForge/internal/domain"
	"CopyForge/internal/plugin"
)

// Input carries everything one prompt is composed from. Optional fields
// (Brand, Plugins, Research) are omitted from the prompt when empty.
type Input struct {
	Domain        domain.DomainProfile
	Platform      domain.PlatformTemplate
	Brand         *domain.Brand
	Plugins       []plugin.Plugin
	PluginConfigs map[string]map[string]string
	Content       domain.Content
	Research      string
}

// Composer assembles the multi-section prompt. It is pure: identical
// inputs always produce identical prompts, and composing never fails.
type Composer struct {
	strategies *Registry
}

// NewComposer wires a strategy registry; nil gets the default set.
func NewComposer(strategies *Registry) *Composer {
	if strategies == nil {
		strategies = DefaultRegistry()
	}
	return &Composer{strategies: strategies}
}

// Compose concatenates the named sections with blank-line separators.
// Section order is fixed and never reordered by inputs: SYSTEM,
// PLATFORM_RULES, BRAND?, PLUGINS?, RESEARCH_CONTEXT?, CONTENT.
func (c *Composer) Compose(in Input) string {
	sections := []string{
		systemSection(in.Domain),
		platformSection(in.Platform),
	}

	if in.Brand != nil {
		sections = append(sections, brandSection(*in.Brand))
	}

	if len(in.Plugins) > 0 {
		sections = append(sections, pluginSection(in.Plugins, in.PluginConfigs))
	}

	if in.Research != "" {
		sections = append(sections, researchSection(in.Research))
	}

	strategy := c.strategies.Resolve(in.Platform.ID)
	sections = append(sections, strategy.BuildContentSection(in.Content, in.Domain, in.Brand))

	return strings.Join(sections, "\n\n")
}

func systemSection(d domain.DomainProfile) string {
	var b strings.Builder
	b.WriteString("### SYSTEM\n")
	fmt.Fprintf(&b, "당신은 %s 업종의 마케팅 카피라이터입니다.\n", industryLabel(d))

	if d.BrandVoice != "" {
		fmt.Fprintf(&b, "브랜드 보이스: %s\n", d.BrandVoice)
	}
	fmt.Fprintf(&b, "문체: %s\n", formalityLabel(d.Formality))

	if len(d.ValueProps) > 0 {
		fmt.Fprintf(&b, "핵심 가치: %s\n", strings.Join(d.ValueProps, " / "))
	}
	if len(d.Entities) > 0 {
		fmt.Fprintf(&b, "언급 대상: %s\n", strings.Join(d.Entities, ", "))
	}
	if len(d.MandatoryPhrases) > 0 {
		fmt.Fprintf(&b, "반드시 담아야 할 문구: %s\n", strings.Join(d.MandatoryPhrases, ", "))
	}
	if len(d.BannedPhrases) > 0 {
		fmt.Fprintf(&b, "절대 사용 금지 표현: %s\n", strings.Join(d.BannedPhrases, ", "))
	}
	for _, note := range d.ComplianceNotes {
		fmt.Fprintf(&b, "준수 사항: %s\n", note)
	}
	if len(d.KPIs) > 0 {
		fmt.Fprintf(&b, "이 글의 목표 지표: %s\n", strings.Join(d.KPIs, ", "))
	}

	return strings.TrimRight(b.String(), "\n")
}

func platformSection(p domain.PlatformTemplate) string {
	var b strings.Builder
	b.WriteString("### PLATFORM_RULES\n")
	fmt.Fprintf(&b, "대상 플랫폼: %s\n", p.Platform)
	fmt.Fprintf(&b, "최대 길이: %d자\n", p.MaxChars)

	switch p.LineBreakStyle {
	case domain.LineBreakShort:
		b.WriteString("줄바꿈: 짧은 호흡, 문장 단위로 자주 끊기\n")
	default:
		b.WriteString("줄바꿈: 문단 단위, 문단 사이 빈 줄\n")
	}

	if p.HashtagCount > 0 {
		fmt.Fprintf(&b, "해시태그: 최대 %d개\n", p.HashtagCount)
	} else {
		b.WriteString("해시태그: 사용 금지\n")
	}

	if p.EmojiAllowed {
		b.WriteString("이모지: 과하지 않게 허용\n")
	} else {
		b.WriteString("이모지: 사용 금지\n")
	}

	for _, hint := range p.StyleHints {
		fmt.Fprintf(&b, "스타일: %s\n", hint)
	}
	if len(p.MustInclude) > 0 {
		fmt.Fprintf(&b, "꼭 포함할 요소: %s\n", strings.Join(p.MustInclude, ", "))
	}
	if len(p.BannedWords) > 0 {
		fmt.Fprintf(&b, "플랫폼 금지어: %s\n", strings.Join(p.BannedWords, ", "))
	}
	if p.OutputFormatHint != "" {
		fmt.Fprintf(&b, "출력 구성: %s\n", p.OutputFormatHint)
	}

	return strings.TrimRight(b.String(), "\n")
}

func brandSection(brand domain.Brand) string {
	var b strings.Builder
	b.WriteString("### BRAND\n")
	if brand.Name != "" {
		fmt.Fprintf(&b, "브랜드명: %s\n", brand.Name)
	}
	if brand.Tone != "" {
		fmt.Fprintf(&b, "톤 지정(도메인 기본값보다 우선): %s\n", brand.Tone)
	}
	if len(brand.Keywords) > 0 {
		fmt.Fprintf(&b, "브랜드 키워드: %s\n", strings.Join(brand.Keywords, ", "))
	}
	for _, hint := range brand.VoiceHints {
		fmt.Fprintf(&b, "보이스 힌트: %s\n", hint)
	}
	return strings.TrimRight(b.String(), "\n")
}

func pluginSection(plugins []plugin.Plugin, configs map[string]map[string]string) string {
	var b strings.Builder
	b.WriteString("### PLUGINS\n")
	for i, p := range plugins {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p.RenderGuide(configs[p.ID()]))
	}
	return strings.TrimRight(b.String(), "\n")
}

func researchSection(research string) string {
	var b strings.Builder
	b.WriteString("### RESEARCH_CONTEXT\n")
	b.WriteString("아래는 참고용 조사 자료입니다. 문장을 그대로 옮기지 말고 내용만 소화해 자신의 표현으로 바꿔 쓰세요.\n")
	b.WriteString(research)
	return strings.TrimRight(b.String(), "\n")
}

func industryLabel(d domain.DomainProfile) string {
	if d.Industry != "" {
		return d.Industry
	}
	return d.ID
}

func formalityLabel(f domain.Formality) string {
	switch f {
	case domain.FormalityCasual:
		return "친근한 구어체"
	case domain.FormalityPro:
		return "격식 있는 문어체"
	default:
		return "중립적인 존댓말"
	}
}
