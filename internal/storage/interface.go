package storage

import (
	"context"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

// Storage defines the registry of live matches.
// Implementations hold matches for the lifetime of the process only.
type Storage interface {
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
	ListMatches(ctx context.Context) ([]*model.Match, error)
}
