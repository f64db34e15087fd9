package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// defaultMaxRounds caps computer vs computer matches
const defaultMaxRounds = 1000

func newSimulateCmd() *cobra.Command {
	var (
		name1     string
		name2     string
		maxRounds int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Watch two computer players play a match",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runSimulate(cmd.Context(), out, name1, name2, maxRounds)
		},
	}

	cmd.Flags().StringVar(&name1, "name1", "one", "First computer's name")
	cmd.Flags().StringVar(&name2, "name2", "two", "Second computer's name")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", defaultMaxRounds, "Give up after this many rounds")

	return cmd
}

func runSimulate(ctx context.Context, out *Output, name1, name2 string, maxRounds int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if maxRounds < 1 {
		return fmt.Errorf("max-rounds must be at least 1, got %d", maxRounds)
	}

	p1, err := app.PlayerService.CreateComputer(name1, cfg.Strategy)
	if err != nil {
		return err
	}
	p2, err := app.PlayerService.CreateComputer(name2, cfg.Strategy)
	if err != nil {
		return err
	}

	m, err := app.MatchController.StartMatch(ctx, p1, p2, cfg.WinningScore)
	if err != nil {
		return err
	}
	defer func() { _ = app.MatchController.EndMatch(ctx, m.ID) }()

	for m.Winner() == nil && m.Rounds() < maxRounds {
		result, err := app.MatchController.PlayRound(ctx, m.ID, nil, nil)
		if err != nil {
			return err
		}
		out.Print(newRoundView(m, result))
	}

	out.Print(newMatchSummary(m))
	if m.Winner() == nil {
		return fmt.Errorf("no winner after %d rounds", m.Rounds())
	}
	return nil
}
