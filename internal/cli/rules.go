package cli

import "github.com/spf13/cobra"

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show which move beats which",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(newRuleViews())
			return nil
		},
	}
}
