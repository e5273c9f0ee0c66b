package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"CopyForge/internal/domain"
	"CopyForge/internal/ports"
)

// ErrNotFound reports an unknown domain or platform identifier.
var ErrNotFound = errors.New("profile not found")

// Store loads domain and platform documents once and serves read-only
// lookups for the lifetime of the process.
type Store struct {
	domains   map[string]domain.DomainProfile
	platforms map[string]domain.PlatformTemplate
}

var _ ports.ProfileStore = (*Store)(nil)

// NewStore reads domains.json and platforms.json from dir. Each file holds
// a map from stable string ID to the profile document.
func NewStore(dir string) (*Store, error) {
	domains := map[string]domain.DomainProfile{}
	if err := readJSON(filepath.Join(dir, "domains.json"), &domains); err != nil {
		return nil, fmt.Errorf("load domain profiles: %w", err)
	}

	platforms := map[string]domain.PlatformTemplate{}
	if err := readJSON(filepath.Join(dir, "platforms.json"), &platforms); err != nil {
		return nil, fmt.Errorf("load platform templates: %w", err)
	}

	for id, d := range domains {
		if d.ID == "" {
			d.ID = id
			domains[id] = d
		}
	}

	for id, p := range platforms {
		if p.ID == "" {
			p.ID = id
		}
		if err := validatePlatform(p); err != nil {
			return nil, fmt.Errorf("platform %s: %w", id, err)
		}
		platforms[id] = p
	}

	return &Store{domains: domains, platforms: platforms}, nil
}

// NewStoreFromMaps builds a store from in-memory documents; used by tests
// and by callers that embed their profile packs.
func NewStoreFromMaps(domains map[string]domain.DomainProfile, platforms map[string]domain.PlatformTemplate) *Store {
	if domains == nil {
		domains = map[string]domain.DomainProfile{}
	}
	if platforms == nil {
		platforms = map[string]domain.PlatformTemplate{}
	}
	return &Store{domains: domains, platforms: platforms}
}

// LoadDomainProfile resolves a domain vertical by ID.
func (s *Store) LoadDomainProfile(domainID string) (domain.DomainProfile, error) {
	if d, ok := s.domains[domainID]; ok {
		return d, nil
	}
	return domain.DomainProfile{}, fmt.Errorf("domain %s: %w", domainID, ErrNotFound)
}

// LoadPlatformTemplate resolves a channel template by ID.
func (s *Store) LoadPlatformTemplate(platformID string) (domain.PlatformTemplate, error) {
	if p, ok := s.platforms[platformID]; ok {
		return p, nil
	}
	return domain.PlatformTemplate{}, fmt.Errorf("platform %s: %w", platformID, ErrNotFound)
}

func validatePlatform(p domain.PlatformTemplate) error {
	if p.MaxChars <= 0 {
		return fmt.Errorf("maxChars must be positive, got %d", p.MaxChars)
	}
	if p.HashtagCount < 0 {
		return fmt.Errorf("hashtagCount must not be negative, got %d", p.HashtagCount)
	}
	return nil
}

func readJSON(path string, v any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
