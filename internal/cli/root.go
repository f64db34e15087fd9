package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/rockpaperscissors/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// appBuilder wires the application once the logger is known
type appBuilder func(logger *slog.Logger) *factory.App

func buildApp(logger *slog.Logger) *factory.App {
	return factory.New(factory.Config{Logger: logger})
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(buildApp)
}

func newRootCmd(build appBuilder) *cobra.Command {
	loaded, cfgErr := LoadConfig()
	if cfgErr != nil {
		loaded = DefaultConfig()
	}
	cfg = loaded

	rootCmd := &cobra.Command{
		Use:   "rps",
		Short: "Rock-Paper-Scissors in the terminal",
		Long: `rps plays Rock-Paper-Scissors against a computer opponent.

Rock beats Scissors, Scissors beats Paper and Paper beats Rock. The first
player to reach the winning score takes the match.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.EffectiveLogLevel(),
			}))
			app = build(logger)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json (env: RPS_OUTPUT)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Log debug output to stderr")
	rootCmd.PersistentFlags().IntVarP(&cfg.WinningScore, "target", "t", cfg.WinningScore, "Round wins needed to take the match (env: RPS_WINNING_SCORE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "Computer strategy (env: RPS_BOT_STRATEGY)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
