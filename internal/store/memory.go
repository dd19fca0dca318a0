package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/i474232898/weather-forecast/internal/weather"
)

var (
	// ErrNotFound is returned when no request is tracked for a given city key.
	ErrNotFound = errors.New("no forecast request for city key")
)

// MemoryRegistry is a concurrency-safe in-memory registry of forecast requests.
// Nothing survives a restart.
type MemoryRegistry struct {
	mu sync.RWMutex

	// key: city key, value: the request tracking it
	data map[string]*weather.Request
}

var _ weather.Registry = (*MemoryRegistry)(nil)

// NewMemoryRegistry creates an empty MemoryRegistry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{
		data: make(map[string]*weather.Request),
	}
}

// LoadOrCreate returns the request for cityKey, calling create at most once per key.
func (s *MemoryRegistry) LoadOrCreate(cityKey string, create func() *weather.Request) *weather.Request {
	s.mu.RLock()
	req, ok := s.data[cityKey]
	s.mu.RUnlock()
	if ok {
		return req
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have won the race between the two locks.
	if req, ok := s.data[cityKey]; ok {
		return req
	}
	req = create()
	s.data[cityKey] = req
	return req
}

// Get returns the request tracked for cityKey.
func (s *MemoryRegistry) Get(cityKey string) (*weather.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.data[cityKey]
	if !ok {
		return nil, ErrNotFound
	}
	return req, nil
}

// Keys returns the tracked city keys in sorted order.
func (s *MemoryRegistry) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
