// Package routing holds the single source of truth for "where are we".
package routing

import "sync"

// Params is the navigation-time parameter bag.
type Params map[string]string

// Route is a path plus its parameter bag.
type Route struct {
	Path   string
	Params Params
}

// Store holds the current logical location. Navigation replaces the route
// atomically; consumers never observe a half-applied transition.
type Store struct {
	mu      sync.RWMutex
	current Route
}

// NewStore starts at "/".
func NewStore() *Store {
	return &Store{current: Route{Path: "/", Params: Params{}}}
}

// Navigate replaces the current path. A nil params leaves the existing
// parameter bag untouched; a non-nil one replaces it wholesale. The path
// is not validated here; route validity is the router's concern.
func (s *Store) Navigate(path string, params Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Path = path
	if params != nil {
		s.current.Params = params
	}
}

// Current returns the route as of this instant.
func (s *Store) Current() Route {
	s.mu.RLock()
	defer s.mu.RUnlock()
	copied := Route{Path: s.current.Path, Params: make(Params, len(s.current.Params))}
	for k, v := range s.current.Params {
		copied.Params[k] = v
	}
	return copied
}
