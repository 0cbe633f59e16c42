package cli

import (
	"github.com/spf13/cobra"
)

func newCoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "coin",
		Short: "Toss a coin",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CoinToss

			if err := client.Post("/api/v1/lottery/coin", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <candidate>...",
		Short: "Draw one winner from the candidates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"candidates": args}
			var result DrawResult

			if err := client.Post("/api/v1/lottery/draw", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
