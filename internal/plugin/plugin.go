package plugin

// Plugin is a named, stateless contributor of extra prompt guidance.
// RenderGuide must be a pure function of its optional config.
type Plugin interface {
	ID() string
	RenderGuide(config map[string]string) string
}

// PostProcessor is an optional second capability: a platform-conditional
// touch-up applied to the finished output.
type PostProcessor interface {
	PostProcess(text, domainID, platformID string) string
}

// Registry keeps a mapping from plugin IDs to their implementations.
// It is built from an explicit registration list at startup, so the set
// of available plugins is a first-class value.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry builds a registry from the given implementations. Later
// entries with a duplicate ID replace earlier ones.
func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{plugins: map[string]Plugin{}}
	for _, p := range plugins {
		r.plugins[p.ID()] = p
	}
	return r
}

// Get returns known plugins in request order, silently dropping unknown
// IDs. Composition stays best-effort: an unknown plugin never fails a
// request.
func (r *Registry) Get(ids []string) []Plugin {
	resolved := make([]Plugin, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.plugins[id]; ok {
			resolved = append(resolved, p)
		}
	}
	return resolved
}
