package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Voting session commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionVoteCmd())
	cmd.AddCommand(newSessionTallyCmd())
	cmd.AddCommand(newSessionChatCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var participants []string
	var passphrase string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Start a voting session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"participants":  participants,
				"gm_passphrase": passphrase,
			}
			var result Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&participants, "participants", "p", nil, "Participant names")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "GM passphrase for tally access")
	_ = cmd.MarkFlagRequired("participants")
	_ = cmd.MarkFlagRequired("passphrase")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a voting session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <id> <voter> <target>",
		Short: "Cast or change a vote",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"target": args[2]}

			if err := client.Put(fmt.Sprintf("/api/v1/sessions/%s/votes/%s", args[0], args[1]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("%s voted for %s", args[1], args[2]))
			return nil
		},
	}
}

func newSessionTallyCmd() *cobra.Command {
	var passphrase string

	cmd := &cobra.Command{
		Use:   "tally <id>",
		Short: "Show the vote tally (GM only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client.SetGMPassphrase(passphrase)

			var result Tally
			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/tally", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&passphrase, "passphrase", "", "GM passphrase")
	_ = cmd.MarkFlagRequired("passphrase")

	return cmd
}

func newSessionChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "GM-to-player chat commands",
	}

	cmd.AddCommand(newSessionChatSendCmd())
	cmd.AddCommand(newSessionChatLogCmd())

	return cmd
}

func newSessionChatSendCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "send <id> <player> <text>",
		Short: "Send a message in a GM-player chat room",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"from": from, "text": args[2]}

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/chat/%s", args[0], args[1]), req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Message sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "GM", "Sender name (GM or the player)")

	return cmd
}

func newSessionChatLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <id> <player>",
		Short: "Show a GM-player chat room's history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ChatHistory

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/chat/%s", args[0], args[1]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
