package patterns

import (
	"log"
	"sort"
	"sync"

	"github.com/milk9111/introgate/intro"
)

// Loader produces a pattern definition on first use.
type Loader func() (*intro.Pattern, error)

// Registry maps pattern ids to trigger wiring and defaults. Eagerly
// registered patterns are available synchronously; lazy entries carry
// only metadata until resolved. The registry is owned by the application
// root rather than being package-global so tests can construct isolated
// instances.
type Registry struct {
	mu      sync.Mutex
	loaded  map[string]*intro.Pattern
	metas   map[string]intro.Meta
	loaders map[string]Loader
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.init()
	return r
}

func (r *Registry) init() {
	r.loaded = map[string]*intro.Pattern{}
	r.metas = map[string]intro.Meta{}
	r.loaders = map[string]Loader{}
}

// Register adds an eagerly available pattern. A nil pattern or empty id
// is ignored.
func (r *Registry) Register(p *intro.Pattern) {
	if p == nil || p.ID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	meta := p.Meta
	meta.ID = p.ID
	r.loaded[p.ID] = p
	r.metas[p.ID] = meta
	delete(r.loaders, p.ID)
}

// RegisterLazy adds a pattern whose full definition is produced on first
// Resolve. Unused lazy patterns cost nothing beyond their metadata.
func (r *Registry) RegisterLazy(id string, meta intro.Meta, load Loader) {
	if id == "" || load == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	meta.ID = id
	r.metas[id] = meta
	r.loaders[id] = load
	delete(r.loaded, id)
}

// Get returns an already-loaded definition. Lazy entries that have not
// been resolved yet, and unknown ids, return (nil, false).
func (r *Registry) Get(id string) (*intro.Pattern, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.loaded[id]
	return p, ok
}

// Resolve returns the definition for id, running the lazy loader when
// needed and caching the result so a second call is free. Unknown ids and
// failed loads return (nil, false); callers fall back to "no intro".
func (r *Registry) Resolve(id string) (*intro.Pattern, bool) {
	r.mu.Lock()
	if p, ok := r.loaded[id]; ok {
		r.mu.Unlock()
		return p, true
	}
	load, ok := r.loaders[id]
	r.mu.Unlock()
	if !ok {
		return nil, false
	}

	p, err := load()
	if err != nil || p == nil {
		log.Printf("patterns: load %s: %v", id, err)
		return nil, false
	}
	if p.ID == "" {
		p.ID = id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// A concurrent Resolve may have won; keep the first result.
	if cached, ok := r.loaded[id]; ok {
		return cached, true
	}
	r.loaded[id] = p
	meta := p.Meta
	meta.ID = id
	r.metas[id] = meta
	delete(r.loaders, id)
	return p, true
}

// Metas returns metadata for every registered id, loaded or not, sorted
// by id. A pattern picker never needs to load a definition to list it.
func (r *Registry) Metas() []intro.Meta {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]intro.Meta, 0, len(r.metas))
	for _, m := range r.metas {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Reset drops every registration. Intended for test teardown.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.init()
}
