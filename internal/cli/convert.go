package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shu5555/jinro-app/internal/catalog"
	"github.com/Shu5555/jinro-app/internal/model"
)

func newConvertCmd() *cobra.Command {
	var inPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a survey CSV into a normalized role sheet",
		Long: `Convert reads a role-submission survey export and writes the
normalized role sheet that generate consumes. Duplicate role names keep
the first occurrence. Runs entirely offline.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(inPath)
			if err != nil {
				return fmt.Errorf("failed to open survey: %w", err)
			}
			defer in.Close()

			roles, err := catalog.ConvertSurvey(in)
			if err != nil {
				return err
			}

			if outPath != "" {
				out, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output: %w", err)
				}
				defer out.Close()
				if err := catalog.WriteRoles(out, roles); err != nil {
					return err
				}
				NewOutput(cfg.Output).PrintMessage(fmt.Sprintf("Wrote %d roles to %s", len(roles), outPath))
				return nil
			}

			if cfg.Output == "json" || cfg.Verbose {
				NewOutput(cfg.Output).Print(RoleList{Roles: rolesToOutput(roles)})
				return nil
			}

			return catalog.WriteRoles(os.Stdout, roles)
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "", "Survey CSV file")
	cmd.Flags().StringVarP(&outPath, "output-file", "O", "", "Role sheet output file (default: stdout)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func rolesToOutput(roles []model.Role) []Role {
	out := make([]Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, Role{
			Name:             r.Name,
			Team:             string(r.Team),
			Category:         r.Category,
			Ability:          r.Ability,
			WinCondition:     r.WinCondition,
			FortuneResult:    r.FortuneResult,
			RelatedRole:      r.RelatedRoleName,
			RelatedRoleCount: r.RelatedRoleCount,
			Author:           r.Author,
		})
	}
	return out
}
