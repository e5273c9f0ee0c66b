package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"CopyForge/internal/config"
)

func TestFetchFormatsResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "성수 카페 트렌드" {
			t.Errorf("unexpected query: %q", got)
		}
		_, _ = w.Write([]byte(`
		<div class="result">
		  <span class="title">소금빵 열풍</span>
		  <p class="desc">성수동 카페들이 소금빵 신제품을 내놓고 있다.</p>
		</div>
		<div class="result">
		  <span class="title">디카페인 수요 증가</span>
		  <p class="desc">저녁 방문객을 위한 디카페인 옵션이 늘었다.</p>
		</div>`))
	}))
	defer server.Close()

	f := NewFetcher(config.ResearchConfig{SearchURL: server.URL + "/search"}, server.Client())

	block, err := f.Fetch(context.Background(), "성수 카페 트렌드")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}

	lines := strings.Split(block, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 result lines, got %d:\n%s", len(lines), block)
	}
	if !strings.HasPrefix(lines[0], "- 소금빵 열풍: ") {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
}

func TestFetchClipsLongSnippets(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("가", 50)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<div class="result"><span class="title">제목</span><p class="desc">` + long + `</p></div>`))
	}))
	defer server.Close()

	f := NewFetcher(config.ResearchConfig{SearchURL: server.URL, MaxSnippet: 10}, server.Client())

	block, err := f.Fetch(context.Background(), "아무거나")
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if want := "- 제목: " + strings.Repeat("가", 10); block != want {
		t.Fatalf("expected clipped snippet %q, got %q", want, block)
	}
}

func TestFetchErrorsOnEmptyResults(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<div class="nothing"></div>`))
	}))
	defer server.Close()

	f := NewFetcher(config.ResearchConfig{SearchURL: server.URL}, server.Client())

	if _, err := f.Fetch(context.Background(), "검색어"); err == nil {
		t.Fatal("expected an error for a page with no results")
	}
}

func TestFetchErrorsWithoutSearchURL(t *testing.T) {
	t.Parallel()

	f := NewFetcher(config.ResearchConfig{}, nil)
	if _, err := f.Fetch(context.Background(), "검색어"); err == nil {
		t.Fatal("expected an error when no search url is configured")
	}
}
