package cli

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration. Environment variables provide the
// defaults and command-line flags override them.
type Config struct {
	PlayerName   string     `env:"RPS_PLAYER_NAME"`
	OpponentName string     `env:"RPS_OPPONENT_NAME"`
	WinningScore int        `env:"RPS_WINNING_SCORE" envDefault:"3"`
	Strategy     string     `env:"RPS_BOT_STRATEGY" envDefault:"random"`
	Output       string     `env:"RPS_OUTPUT" envDefault:"text"`
	LogLevel     slog.Level `env:"RPS_LOG_LEVEL" envDefault:"WARN"`
	Verbose      bool
}

// DefaultConfig returns a Config with default values, ignoring the environment
func DefaultConfig() *Config {
	return &Config{
		WinningScore: model.DefaultWinningScore,
		Strategy:     model.BotStrategyRandom,
		Output:       OutputText,
		LogLevel:     slog.LevelWarn,
	}
}

// LoadConfig reads the configuration from the environment
func LoadConfig() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that flags and the environment cannot constrain
func (c *Config) Validate() error {
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q: must be %s or %s", c.Output, OutputText, OutputJSON)
	}
	if c.WinningScore < 1 {
		return model.ErrInvalidWinningScore
	}
	if !model.IsValidBotStrategy(c.Strategy) {
		return fmt.Errorf("unknown bot strategy %q: choose from %v", c.Strategy, model.ValidBotStrategies())
	}
	return nil
}

// EffectiveLogLevel returns the log level, lowered to debug in verbose mode
func (c *Config) EffectiveLogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return c.LogLevel
}
