package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/rockpaperscissors/internal/dependencies/clock"
	"github.com/mcoot/rockpaperscissors/internal/dependencies/identity"
	"github.com/mcoot/rockpaperscissors/internal/dependencies/random"
	"github.com/mcoot/rockpaperscissors/internal/services/bot"
	"github.com/mcoot/rockpaperscissors/internal/services/match"
	"github.com/mcoot/rockpaperscissors/internal/services/player"
	"github.com/mcoot/rockpaperscissors/internal/storage"
	"github.com/mcoot/rockpaperscissors/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    identity.Generator

	// Services
	Strategies      map[string]bot.Strategy
	PlayerService   *player.Service
	MatchController *match.Controller

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return newWithDependencies(memory.New(), clock.New(), random.New(), identity.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, ids identity.Generator, logger *slog.Logger) *App {
	strategies := bot.DefaultStrategies(rnd)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		IDs:             ids,
		Strategies:      strategies,
		PlayerService:   player.NewService(ids, strategies, logger),
		MatchController: match.NewController(store, clk, ids, logger),
		Logger:          logger,
	}
}
