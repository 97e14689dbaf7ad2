package session

import (
	"sync"

	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"

	"go.trai.ch/inch/internal/core/domain"
	"go.trai.ch/inch/internal/core/ports"
)

// Store is the injectable storage behind the session registry. The default
// is process-lifetime memoization; tests swap in isolated instances and a
// reimplementation may choose an LRU without changing callers.
type Store interface {
	// Get retrieves the session for key. Returns nil, false on a miss.
	Get(key string) (*Session, bool)
	// Put stores the session under key.
	Put(key string, s *Session)
	// All returns every stored session, in no particular order.
	All() []*Session
}

// MapStore is the default in-memory store. No eviction: sessions persist
// until process exit, trading memory for the compiler-service bootstrap cost.
type MapStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMapStore creates an empty MapStore.
func NewMapStore() *MapStore {
	return &MapStore{sessions: make(map[string]*Session)}
}

// Get retrieves the session for key.
func (m *MapStore) Get(key string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[key]
	return s, ok
}

// Put stores the session under key.
func (m *MapStore) Put(key string, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key] = s
}

// All returns every stored session.
func (m *MapStore) All() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	return all
}

// Registry memoizes compilation sessions by configuration key, so build-tool
// invocations sharing one project configuration reuse one compiler instance
// instead of re-initializing it per file.
type Registry struct {
	store  Store
	logger ports.Logger
	group  singleflight.Group
}

// NewRegistry creates a registry over the given store.
func NewRegistry(store Store, logger ports.Logger) *Registry {
	return &Registry{store: store, logger: logger}
}

// All returns every live session. Used to fan one watch cycle out across all
// configurations.
func (r *Registry) All() []*Session {
	return r.store.All()
}

// GetOrCreate returns the session for key, constructing it on first use via
// resolve. Resolution runs at most once per key: concurrent misses collapse
// into a single construction.
func (r *Registry) GetOrCreate(key string, resolve func() (Config, error)) (*Session, error) {
	if s, ok := r.store.Get(key); ok {
		return s, nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		if s, ok := r.store.Get(key); ok {
			return s, nil
		}

		cfg, err := resolve()
		if err != nil {
			return nil, zerr.Wrap(err, "session configuration resolution failed")
		}
		cfg.Key = key

		s := New(cfg)
		r.store.Put(key, s)
		r.logger.Info("created compilation session " + key)
		return s, nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSessionConstructFailed.Error()), "key", key)
	}

	s, ok := v.(*Session)
	if !ok {
		return nil, zerr.With(domain.ErrSessionConstructFailed, "key", key)
	}
	return s, nil
}
