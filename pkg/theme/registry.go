package theme

import (
	"sort"
	"sync"
)

// Registry holds named themes and the name of the default one.
type Registry struct {
	mu          *sync.RWMutex
	themes      map[string]*Theme
	defaultName string
}

func NewRegistry() *Registry {
	return &Registry{
		mu:     &sync.RWMutex{},
		themes: make(map[string]*Theme),
	}
}

// Register stores t under name, replacing any theme of the same name.
func (r *Registry) Register(t *Theme, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.themes[name] = t
}

// MakeDefault points the default at name. The name is not checked, a theme
// may be registered under it later.
func (r *Registry) MakeDefault(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaultName = name
}

func (r *Registry) Get(name string) (*Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.themes[name]
	return t, ok
}

func (r *Registry) DefaultName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.defaultName
}

// Default returns the theme the default name points at. ok is false when
// no theme is registered under that name.
func (r *Registry) Default() (t *Theme, ok bool) {
	return r.Get(r.DefaultName())
}

// Names returns the registered theme names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
