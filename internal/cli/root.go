package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "jinro",
		Short: "CLI tool for the jinro role-assignment toolkit",
		Long: `jinro is a CLI tool for werewolf game masters.

It converts survey spreadsheets into role sheets, assigns roles to
participants, reveals assignments by password, and drives the voting
and lottery endpoints of the server API. Conversion, generation and
payload reveal also work fully offline.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: JINRO_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newRevealCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newCoinCmd())
	rootCmd.AddCommand(newDrawCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
