package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/rockpaperscissors/internal/model"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive match against the computer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runPlay(cmd.Context(), cmd.InOrStdin(), out)
		},
	}

	cmd.Flags().StringVarP(&cfg.PlayerName, "name", "n", cfg.PlayerName, "Your display name (env: RPS_PLAYER_NAME)")
	cmd.Flags().StringVar(&cfg.OpponentName, "opponent", cfg.OpponentName, "Computer display name (env: RPS_OPPONENT_NAME)")

	return cmd
}

// runPlay drives a human vs computer match from line-oriented input until
// the input ends or the player declines a rematch
func runPlay(ctx context.Context, in io.Reader, out *Output) error {
	if ctx == nil {
		ctx = context.Background()
	}

	human := app.PlayerService.CreateHuman(cfg.PlayerName)
	computer, err := app.PlayerService.CreateComputer(cfg.OpponentName, cfg.Strategy)
	if err != nil {
		return err
	}

	m, err := app.MatchController.StartMatch(ctx, human, computer, cfg.WinningScore)
	if err != nil {
		return err
	}
	defer func() { _ = app.MatchController.EndMatch(ctx, m.ID) }()

	scanner := bufio.NewScanner(in)
	movePrompt := fmt.Sprintf("Enter your move (%s): ", strings.Join(model.MoveCodes(), ", "))

	for {
		out.Prompt(movePrompt)
		if !scanner.Scan() {
			return scanner.Err()
		}

		move, err := model.ParseMove(scanner.Text())
		if err != nil {
			out.PrintError(err)
			continue
		}

		result, err := app.MatchController.PlayRound(ctx, m.ID, move, nil)
		if err != nil {
			return err
		}
		out.Print(newRoundView(m, result))

		if m.Winner() == nil {
			continue
		}
		out.Print(newMatchSummary(m))

		out.Prompt("Type 'Y' to play again, or anything else to quit: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if !strings.EqualFold(strings.TrimSpace(scanner.Text()), "Y") {
			return nil
		}

		if _, err := app.MatchController.ResetScores(ctx, m.ID); err != nil {
			return err
		}
	}
}
