package plugin

import (
	"fmt"
	"regexp"
	"strings"
)

// Builtin returns the stock plugin set registered at startup.
func Builtin() []Plugin {
	return []Plugin{
		SeasonalEvent{},
		ReviewTone{},
		FormalTouchup{},
	}
}

// SeasonalEvent nudges the model to tie the copy to a season or event.
type SeasonalEvent struct{}

func (SeasonalEvent) ID() string { return "seasonal-event" }

func (SeasonalEvent) RenderGuide(config map[string]string) string {
	season := config["season"]
	if season == "" {
		return "현재 시즌이나 다가오는 기념일과 자연스럽게 연결되는 문구를 한 군데 포함하세요."
	}
	return fmt.Sprintf("'%s' 시즌 분위기를 살린 표현을 본문에 자연스럽게 녹여 주세요.", season)
}

// ReviewTone frames the copy around customer-review language.
type ReviewTone struct{}

func (ReviewTone) ID() string { return "review-tone" }

func (ReviewTone) RenderGuide(config map[string]string) string {
	return "실제 방문 고객의 후기를 인용하는 듯한 문장을 1~2개 포함해 신뢰감을 주되, 구체적인 수치나 보장 표현은 피하세요."
}

var casualMarkers = regexp.MustCompile(`[ㅋㅎ]{2,}|~+|!{2,}`)

// FormalTouchup strips casual markers on formal platforms; the guide side
// only reminds the model of the register.
type FormalTouchup struct{}

var _ PostProcessor = FormalTouchup{}

func (FormalTouchup) ID() string { return "formal-touchup" }

func (FormalTouchup) RenderGuide(config map[string]string) string {
	return "격식 있는 문어체를 유지하고 신조어, 초성체, 물결표를 사용하지 마세요."
}

// PostProcess removes casual markers only where the target is a formal
// long-form or listing channel.
func (FormalTouchup) PostProcess(text, domainID, platformID string) string {
	switch platformID {
	case "blog", "place":
		cleaned := casualMarkers.ReplaceAllString(text, "")
		return strings.TrimSpace(cleaned)
	}
	return text
}
