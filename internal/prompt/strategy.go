package prompt

import (
	"CopyForge/internal/domain"
)

// Strategy builds the platform-specific CONTENT section of the prompt.
// Each supported platform has its own structural contract (length target,
// hashtag placement, multi-part output shape), so strategies are not
// interchangeable.
type Strategy interface {
	PlatformID() string
	BuildContentSection(content domain.Content, profile domain.DomainProfile, brand *domain.Brand) string
}

// Registry keeps a mapping from platform IDs to their strategies.
type Registry struct {
	strategies map[string]Strategy
	fallback   Strategy
}

// NewRegistry builds a registry with the given fallback for unregistered
// platform IDs.
func NewRegistry(fallback Strategy) *Registry {
	return &Registry{strategies: map[string]Strategy{}, fallback: fallback}
}

// Register adds or replaces a strategy implementation.
func (r *Registry) Register(strategy Strategy) {
	if r.strategies == nil {
		r.strategies = map[string]Strategy{}
	}
	r.strategies[strategy.PlatformID()] = strategy
}

// Resolve returns the strategy for a platform ID, or the generic fallback
// when the ID is not registered. Resolution never fails.
func (r *Registry) Resolve(platformID string) Strategy {
	if s, ok := r.strategies[platformID]; ok {
		return s
	}
	return r.fallback
}

// DefaultRegistry wires the four built-in platform strategies plus the
// generic fallback.
func DefaultRegistry() *Registry {
	r := NewRegistry(GenericStrategy{})
	r.Register(BlogStrategy{})
	r.Register(ThreadsStrategy{})
	r.Register(InstagramStrategy{})
	r.Register(PlaceStrategy{})
	return r
}
