package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"CopyForge/internal/domain"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
}

func TestStoreLoadsDocuments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "domains.json", `{
	  "skincare": {
	    "industry": "피부관리샵",
	    "formality": "neutral",
	    "bannedPhrases": ["치료"],
	    "hashtagSeeds": ["피부관리"]
	  }
	}`)
	writeFixture(t, dir, "platforms.json", `{
	  "blog": {
	    "platform": "블로그",
	    "maxChars": 2000,
	    "lineBreakStyle": "normal",
	    "hashtagCount": 15
	  }
	}`)

	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}

	d, err := store.LoadDomainProfile("skincare")
	if err != nil {
		t.Fatalf("LoadDomainProfile error: %v", err)
	}
	if d.ID != "skincare" {
		t.Fatalf("map key must backfill the ID, got %q", d.ID)
	}
	if d.Industry != "피부관리샵" {
		t.Fatalf("unexpected industry: %q", d.Industry)
	}

	p, err := store.LoadPlatformTemplate("blog")
	if err != nil {
		t.Fatalf("LoadPlatformTemplate error: %v", err)
	}
	if p.MaxChars != 2000 || p.HashtagCount != 15 {
		t.Fatalf("unexpected platform template: %+v", p)
	}
}

func TestStoreNotFound(t *testing.T) {
	t.Parallel()

	store := NewStoreFromMaps(nil, nil)

	if _, err := store.LoadDomainProfile("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.LoadPlatformTemplate("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreRejectsInvalidPlatform(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "domains.json", `{}`)
	writeFixture(t, dir, "platforms.json", `{"bad": {"platform": "채널", "maxChars": 0}}`)

	if _, err := NewStore(dir); err == nil {
		t.Fatal("expected validation error for non-positive maxChars")
	}
}

func TestStoreFromMaps(t *testing.T) {
	t.Parallel()

	store := NewStoreFromMaps(
		map[string]domain.DomainProfile{"cafe": {ID: "cafe"}},
		map[string]domain.PlatformTemplate{"threads": {ID: "threads", MaxChars: 500}},
	)

	if _, err := store.LoadDomainProfile("cafe"); err != nil {
		t.Fatalf("LoadDomainProfile error: %v", err)
	}
	if _, err := store.LoadPlatformTemplate("threads"); err != nil {
		t.Fatalf("LoadPlatformTemplate error: %v", err)
	}
}
