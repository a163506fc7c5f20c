package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/weiawesome/identifier/internal/config"
)

var (
	// ErrEmptyName is returned when a kind has no name.
	ErrEmptyName = errors.New("registry: empty kind name")
	// ErrDuplicateKind is returned when a name is registered twice.
	ErrDuplicateKind = errors.New("registry: duplicate kind")
	// ErrUnknownStrategy is returned for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("registry: unknown strategy")
	// ErrUnsupportedWidth is returned when a strategy cannot serve a width.
	ErrUnsupportedWidth = errors.New("registry: unsupported width")
)

// Registry maps kind names to codecs. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Codec
}

func New() *Registry {
	return &Registry{kinds: make(map[string]Codec)}
}

// FromConfig builds and registers every configured kind.
func FromConfig(kinds []config.KindConfig) (*Registry, error) {
	r := New()
	for _, k := range kinds {
		c, err := Build(k)
		if err != nil {
			return nil, err
		}
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds c under c.Name().
func (r *Registry) Register(c Codec) error {
	if c.Name() == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.kinds[c.Name()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKind, c.Name())
	}
	r.kinds[c.Name()] = c
	return nil
}

// Lookup returns the codec registered under name.
func (r *Registry) Lookup(name string) (Codec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.kinds[name]
	return c, ok
}

// Names returns the registered kind names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kinds)
}
