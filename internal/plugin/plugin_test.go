package plugin

import (
	"strings"
	"testing"
)

func TestRegistryDropsUnknownIDs(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Builtin()...)
	got := r.Get([]string{"review-tone", "no-such-plugin", "seasonal-event"})

	if len(got) != 2 {
		t.Fatalf("expected 2 plugins, got %d", len(got))
	}
	if got[0].ID() != "review-tone" || got[1].ID() != "seasonal-event" {
		t.Fatalf("request order must be preserved: %s, %s", got[0].ID(), got[1].ID())
	}
}

func TestRegistryEmptyRequest(t *testing.T) {
	t.Parallel()

	r := NewRegistry(Builtin()...)
	if got := r.Get(nil); len(got) != 0 {
		t.Fatalf("expected no plugins, got %d", len(got))
	}
}

func TestSeasonalEventGuideUsesConfig(t *testing.T) {
	t.Parallel()

	var p SeasonalEvent
	withSeason := p.RenderGuide(map[string]string{"season": "크리스마스"})
	if !strings.Contains(withSeason, "크리스마스") {
		t.Fatalf("guide must mention the configured season: %q", withSeason)
	}

	generic := p.RenderGuide(nil)
	if generic == "" || strings.Contains(generic, "크리스마스") {
		t.Fatalf("unexpected generic guide: %q", generic)
	}
}

func TestFormalTouchupStripsCasualMarkersOnFormalChannels(t *testing.T) {
	t.Parallel()

	var p FormalTouchup

	got := p.PostProcess("오늘도 좋은 하루 보내세요ㅋㅋㅋ 감사합니다~~", "skincare", "blog")
	if strings.Contains(got, "ㅋㅋ") || strings.Contains(got, "~") {
		t.Fatalf("casual markers must be stripped on blog: %q", got)
	}

	untouched := p.PostProcess("오늘도 화이팅ㅋㅋ", "skincare", "threads")
	if untouched != "오늘도 화이팅ㅋㅋ" {
		t.Fatalf("casual channels must stay untouched: %q", untouched)
	}
}
