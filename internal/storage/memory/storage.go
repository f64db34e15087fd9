package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	matches map[model.MatchID]*model.Match
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		matches: make(map[model.MatchID]*model.Match),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
	return nil
}

// ListMatches returns all matches, oldest first
func (s *Storage) ListMatches(ctx context.Context) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Match, 0, len(s.matches))
	for _, m := range s.matches {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
