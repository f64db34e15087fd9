package player

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/identity"
	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/services/bot"
)

// ErrUnknownStrategy is returned when a computer player asks for a strategy
// that is not registered
var ErrUnknownStrategy = errors.New("unknown bot strategy")

// Service creates players with generated identities
type Service struct {
	ids        identity.Generator
	strategies map[string]bot.Strategy
	logger     *slog.Logger
}

// NewService creates a new player Service
func NewService(ids identity.Generator, strategies map[string]bot.Strategy, logger *slog.Logger) *Service {
	return &Service{
		ids:        ids,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "player-service")),
	}
}

// CreateHuman creates a player whose moves are supplied by the caller.
// An empty name falls back to the generated ID.
func (s *Service) CreateHuman(name string) *model.Player {
	p := model.NewHumanPlayer(model.PlayerID(s.ids.NewID()), name)

	s.logger.Debug("human player created",
		slog.String("player_id", string(p.ID)),
		slog.String("display_name", p.DisplayName()),
	)

	return p
}

// CreateComputer creates a player that picks its own moves with the named strategy
func (s *Service) CreateComputer(name string, strategy string) (*model.Player, error) {
	st, ok := s.strategies[strategy]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}

	p := model.NewComputerPlayer(model.PlayerID(s.ids.NewID()), name, st)

	s.logger.Debug("computer player created",
		slog.String("player_id", string(p.ID)),
		slog.String("display_name", p.DisplayName()),
		slog.String("strategy", model.BotStrategyDisplayName(strategy)),
	)

	return p, nil
}
