package match

import (
	"context"
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/clock"
	"github.com/mcoot/rockpaperscissors/internal/dependencies/identity"
	"github.com/mcoot/rockpaperscissors/internal/model"
	"github.com/mcoot/rockpaperscissors/internal/storage"
)

// Controller manages the lifecycle of live matches
type Controller struct {
	storage storage.Storage
	clock   clock.Clock
	ids     identity.Generator
	logger  *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	ids identity.Generator,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		ids:     ids,
		logger:  logger.With(slog.String("component", "match-controller")),
	}
}

// StartMatch creates and registers a match between two players
func (c *Controller) StartMatch(ctx context.Context, player1, player2 *model.Player, winningScore int) (*model.Match, error) {
	m, err := model.NewMatch(model.MatchID(c.ids.NewID()), player1, player2, winningScore)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(m.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match started",
		slog.String("match_id", string(m.ID)),
		slog.String("player1", player1.DisplayName()),
		slog.String("player2", player2.DisplayName()),
		slog.Int("winning_score", winningScore),
	)

	return m, nil
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, id)
}

// ListMatches returns every live match, oldest first
func (c *Controller) ListMatches(ctx context.Context) ([]*model.Match, error) {
	return c.storage.ListMatches(ctx)
}

// PlayRound plays one round of the match. A nil move asks a computer
// player's strategy to choose.
func (c *Controller) PlayRound(ctx context.Context, id model.MatchID, move1, move2 any) (model.RoundResult, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return model.RoundResult{}, err
	}

	result, err := m.PlayRound(move1, move2)
	if err != nil {
		c.logger.Debug("round rejected",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()),
		)
		return model.RoundResult{}, err
	}

	m.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return model.RoundResult{}, err
	}

	c.logger.Info("round played",
		slog.String("match_id", string(id)),
		slog.Int("round", result.Round),
		slog.String("move1", result.Move1.String()),
		slog.String("move2", result.Move2.String()),
		slog.String("outcome", string(result.Outcome)),
		slog.Int("score1", m.Player1().Score()),
		slog.Int("score2", m.Player2().Score()),
	)

	if winner := m.Winner(); winner != nil {
		c.logger.Info("match decided",
			slog.String("match_id", string(id)),
			slog.String("winner_id", string(winner.ID)),
			slog.String("winner", winner.DisplayName()),
			slog.Int("rounds", m.Rounds()),
		)
	}

	return result, nil
}

// ResetScores zeroes both players' scores so the match can be replayed
func (c *Controller) ResetScores(ctx context.Context, id model.MatchID) (*model.Match, error) {
	m, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	m.ResetScores()
	m.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, m); err != nil {
		return nil, err
	}

	c.logger.Info("scores reset", slog.String("match_id", string(id)))
	return m, nil
}

// EndMatch removes a match from the registry
func (c *Controller) EndMatch(ctx context.Context, id model.MatchID) error {
	if _, err := c.storage.GetMatch(ctx, id); err != nil {
		return err
	}
	if err := c.storage.DeleteMatch(ctx, id); err != nil {
		return err
	}

	c.logger.Info("match ended", slog.String("match_id", string(id)))
	return nil
}
