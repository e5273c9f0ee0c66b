package research

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"CopyForge/internal/config"
	"CopyForge/internal/ports"
)

const maxResults = 5

// Fetcher scrapes a configured search page and emits the pre-formatted
// reference block the prompt composer appends verbatim.
type Fetcher struct {
	searchURL  string
	maxSnippet int
	client     *http.Client
}

var _ ports.ResearchSource = (*Fetcher)(nil)

// NewFetcher wires an HTTP client; maxSnippet defaults to 400 runes.
func NewFetcher(cfg config.ResearchConfig, client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	maxSnippet := cfg.MaxSnippet
	if maxSnippet <= 0 {
		maxSnippet = 400
	}
	return &Fetcher{searchURL: cfg.SearchURL, maxSnippet: maxSnippet, client: client}
}

// Fetch runs one search and formats the top results as a text block.
func (f *Fetcher) Fetch(ctx context.Context, query string) (string, error) {
	if f.searchURL == "" {
		return "", fmt.Errorf("research search url is not configured")
	}

	pageURL, err := buildSearchURL(f.searchURL, query)
	if err != nil {
		return "", err
	}

	doc, err := f.fetchDocument(ctx, pageURL)
	if err != nil {
		return "", err
	}

	block := f.extractBlock(doc)
	if block == "" {
		return "", fmt.Errorf("no results for query %q", query)
	}
	return block, nil
}

func (f *Fetcher) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "CopyForge/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// extractBlock walks result items and renders up to maxResults entries as
// "- title: snippet" lines.
func (f *Fetcher) extractBlock(doc *goquery.Document) string {
	var lines []string

	doc.Find(".result").EachWithBreak(func(i int, item *goquery.Selection) bool {
		title := strings.TrimSpace(item.Find(".title").First().Text())
		snippet := strings.TrimSpace(item.Find(".desc").First().Text())
		if title == "" && snippet == "" {
			return true
		}

		snippet = clipRunes(snippet, f.maxSnippet)
		switch {
		case title == "":
			lines = append(lines, fmt.Sprintf("- %s", snippet))
		case snippet == "":
			lines = append(lines, fmt.Sprintf("- %s", title))
		default:
			lines = append(lines, fmt.Sprintf("- %s: %s", title, snippet))
		}

		return len(lines) < maxResults
	})

	return strings.Join(lines, "\n")
}

func buildSearchURL(base, query string) (string, error) {
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid search url %s: %w", base, err)
	}

	q := parsed.Query()
	q.Set("query", query)
	parsed.RawQuery = q.Encode()
	return parsed.String(), nil
}

func clipRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
