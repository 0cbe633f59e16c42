package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/services/codec"
)

func newRevealCmd() *cobra.Command {
	var id string
	var payload string
	var password string

	cmd := &cobra.Command{
		Use:   "reveal",
		Short: "Reveal one assignment by its password",
		Long: `Reveal shows the single assignment matching a password. With
--payload the blob is decoded locally; with --id the lookup goes
through the server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (id == "") == (payload == "") {
				return fmt.Errorf("exactly one of --id and --payload is required")
			}

			out := NewOutput(cfg.Output)

			if id != "" {
				req := map[string]string{"password": password}
				var result Assignment
				if err := client.Post(fmt.Sprintf("/api/v1/distributions/%s/reveal", id), req, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			assignments, err := codec.Decode(payload)
			if err != nil {
				return err
			}
			assignment, ok := model.FindByPassword(assignments, password)
			if !ok {
				return model.ErrWrongPassword
			}
			out.Print(assignmentToOutput(assignment))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Stored distribution ID")
	cmd.Flags().StringVar(&payload, "payload", "", "Encoded assignment payload")
	cmd.Flags().StringVar(&password, "password", "", "The participant's password word")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func assignmentToOutput(a *model.Assignment) Assignment {
	return Assignment{
		ParticipantName: a.ParticipantName,
		Password:        a.Password,
		Role: Role{
			Name:             a.Role.Name,
			Team:             string(a.Role.Team),
			Category:         a.Role.Category,
			Ability:          a.Role.Ability,
			WinCondition:     a.Role.WinCondition,
			FortuneResult:    a.Role.FortuneResult,
			RelatedRole:      a.Role.RelatedRoleName,
			RelatedRoleCount: a.Role.RelatedRoleCount,
			Author:           a.Role.Author,
		},
	}
}
