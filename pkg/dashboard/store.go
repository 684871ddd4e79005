package dashboard

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Fetcher lists a whole collection; client.Collection satisfies it.
type Fetcher[R any] interface {
	List(ctx context.Context) ([]R, error)
}

// Store is the state container for one entity kind: the list, the entity
// under edit, a loading flag and the last fetch error.
type Store[R any] struct {
	name  string
	fetch Fetcher[R]
	log   *zap.Logger

	mu       sync.RWMutex
	list     []R
	current  *R
	inflight int
	err      string
}

func NewStore[R any](name string, fetch Fetcher[R], log *zap.Logger) *Store[R] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store[R]{name: name, fetch: fetch, log: log.With(zap.String("store", name)), list: []R{}}
}

func (s *Store[R]) Name() string { return s.name }

// List returns a copy of the current list.
func (s *Store[R]) List() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]R, len(s.list))
	copy(out, s.list)
	return out
}

func (s *Store[R]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

func (s *Store[R]) Current() (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		var zero R
		return zero, false
	}
	return *s.current, true
}

func (s *Store[R]) SetCurrent(r R) {
	s.mu.Lock()
	s.current = &r
	s.mu.Unlock()
}

func (s *Store[R]) ClearCurrent() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// Loading reports whether any refresh is in flight.
func (s *Store[R]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

// Err is the message of the last failed refresh, or "".
func (s *Store[R]) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Replace swaps the list wholesale.
func (s *Store[R]) Replace(list []R) {
	if list == nil {
		list = []R{}
	}
	s.mu.Lock()
	s.list = list
	s.mu.Unlock()
}

// Refresh re-fetches the collection. On failure the list is left unchanged
// and Err carries a readable message. Concurrent refreshes are not ordered:
// whichever response arrives last wins.
func (s *Store[R]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inflight--
		s.mu.Unlock()
	}()

	list, err := s.fetch.List(ctx)
	if err != nil {
		s.log.Warn("refresh failed", zap.Error(err))
		s.mu.Lock()
		s.err = fmt.Sprintf("Failed to fetch %s: %v", s.name, err)
		s.mu.Unlock()
		return fmt.Errorf("fetch %s: %w", s.name, err)
	}
	s.mu.Lock()
	s.list = list
	s.err = ""
	s.mu.Unlock()
	s.log.Debug("refreshed", zap.Int("count", len(list)))
	return nil
}
