// Package repository holds the in-memory search-session store. Itineraries
// only live for one navigation session (search → navigation → payment), so
// nothing here touches durable storage.
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/y-smart/service-tripplan/internal/domain/route"
)

// TripSearch is one stored search result set.
type TripSearch struct {
	ID          string
	Departure   string
	Destination string
	Routes      []route.Route
	CreatedAt   time.Time
}

// TripStore keeps search result sets addressable for the session TTL.
type TripStore struct {
	mu    sync.RWMutex
	ttl   time.Duration
	items map[string]*TripSearch
}

// NewTripStore creates a store whose entries expire after ttl.
func NewTripStore(ttl time.Duration) *TripStore {
	return &TripStore{
		ttl:   ttl,
		items: make(map[string]*TripSearch),
	}
}

// Save stores a search result set under its ID.
func (s *TripStore) Save(search *TripSearch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[search.ID] = search
}

// Find returns a stored search by ID, if it has not expired.
func (s *TripStore) Find(id string) (*TripSearch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search, ok := s.items[id]
	if !ok || time.Since(search.CreatedAt) > s.ttl {
		return nil, false
	}
	return search, true
}

// FindRoute returns one itinerary of a stored search.
func (s *TripStore) FindRoute(searchID, routeID string) (route.Route, bool) {
	search, ok := s.Find(searchID)
	if !ok {
		return route.Route{}, false
	}
	for _, r := range search.Routes {
		if r.ID == routeID {
			return r, true
		}
	}
	return route.Route{}, false
}

// Len returns the number of stored searches, expired entries included.
func (s *TripStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// StartJanitor purges expired entries every interval until ctx is done.
func (s *TripStore) StartJanitor(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				s.purge(now)
			}
		}
	}()
}

func (s *TripStore) purge(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, search := range s.items {
		if now.Sub(search.CreatedAt) > s.ttl {
			delete(s.items, id)
		}
	}
}
