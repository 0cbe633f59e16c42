package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shu5555/jinro-app/internal/catalog"
	"github.com/Shu5555/jinro-app/internal/dependencies/random"
	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/services/assign"
	"github.com/Shu5555/jinro-app/internal/services/codec"
	"github.com/Shu5555/jinro-app/internal/services/words"
)

func newGenerateCmd() *cobra.Command {
	var rolesPath string
	var wordsPath string
	var participants []string
	var villagerCount int
	var werewolfCount int
	var thirdCount int
	var rawCounts []string
	var store bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Assign roles and passwords to participants",
		Long: `Generate draws roles from a role sheet and binds each participant
to a role and a one-word password. By default the run is local and
nothing leaves the machine; with --store the run goes through the
server, which keeps the payload retrievable by ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			counts, err := buildCounts(villagerCount, werewolfCount, thirdCount, rawCounts)
			if err != nil {
				return err
			}
			if len(participants) == 0 {
				return fmt.Errorf("at least one participant is required")
			}

			out := NewOutput(cfg.Output)

			if store {
				data, err := os.ReadFile(rolesPath)
				if err != nil {
					return fmt.Errorf("failed to read role sheet: %w", err)
				}

				req := map[string]any{
					"participants": participants,
					"counts":       counts,
					"roles_csv":    string(data),
				}
				var result Distribution
				if err := client.Post("/api/v1/distributions", req, &result); err != nil {
					return err
				}
				out.Print(result)
				return nil
			}

			result, err := generateLocally(rolesPath, wordsPath, participants, counts)
			if err != nil {
				return err
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rolesPath, "roles", "r", "", "Normalized role sheet CSV")
	cmd.Flags().StringVarP(&wordsPath, "words", "w", "", "Password word list, one word per line (default: built-in)")
	cmd.Flags().StringSliceVarP(&participants, "participants", "p", nil, "Participant names")
	cmd.Flags().IntVar(&villagerCount, "villager", 0, "Number of villager-team roles to draw")
	cmd.Flags().IntVar(&werewolfCount, "werewolf", 0, "Number of werewolf-team roles to draw")
	cmd.Flags().IntVar(&thirdCount, "third", 0, "Number of third-party roles to draw")
	cmd.Flags().StringArrayVar(&rawCounts, "count", nil, "Extra draw as team:category:n (repeatable)")
	cmd.Flags().BoolVar(&store, "store", false, "Run through the server and store the payload")
	_ = cmd.MarkFlagRequired("roles")
	_ = cmd.MarkFlagRequired("participants")

	return cmd
}

// countSpec mirrors the API's count request shape so the same slice
// serves both the local engine and the --store request body.
type countSpec struct {
	Team     string `json:"team"`
	Category string `json:"category,omitempty"`
	Count    int    `json:"count"`
}

func buildCounts(villager, werewolf, third int, raw []string) ([]countSpec, error) {
	// The team flags draw across the whole team; --count narrows to a
	// category when the sheet uses them.
	var counts []countSpec
	if werewolf > 0 {
		counts = append(counts, countSpec{Team: string(model.TeamWerewolf), Count: werewolf})
	}
	if villager > 0 {
		counts = append(counts, countSpec{Team: string(model.TeamVillager), Count: villager})
	}
	if third > 0 {
		counts = append(counts, countSpec{Team: string(model.TeamThirdParty), Count: third})
	}

	for _, spec := range raw {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid count %q, expected team:category:n", spec)
		}
		n, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid count %q: %w", spec, err)
		}
		counts = append(counts, countSpec{Team: parts[0], Category: parts[1], Count: n})
	}

	if len(counts) == 0 {
		return nil, fmt.Errorf("no role counts requested")
	}
	return counts, nil
}

func generateLocally(rolesPath, wordsPath string, participants []string, counts []countSpec) (Distribution, error) {
	in, err := os.Open(rolesPath)
	if err != nil {
		return Distribution{}, fmt.Errorf("failed to open role sheet: %w", err)
	}
	defer in.Close()

	cat, err := catalog.Load(in)
	if err != nil {
		return Distribution{}, err
	}

	wordsService := words.New(nil, nil)
	if wordsPath != "" {
		list, err := readWordList(wordsPath)
		if err != nil {
			return Distribution{}, err
		}
		wordsService.LoadWords(list)
	} else {
		wordsService.LoadDefault()
	}
	pool, err := wordsService.Words()
	if err != nil {
		return Distribution{}, err
	}

	req := assign.Request{Participants: participants}
	for _, c := range counts {
		team, ok := model.ParseTeam(c.Team)
		if !ok {
			return Distribution{}, fmt.Errorf("unknown team %q", c.Team)
		}
		req.Counts = append(req.Counts, assign.CountRequest{Team: team, Category: c.Category, Count: c.Count})
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := assign.New(random.New(), logger)

	assignments, err := engine.Assign(cat, req, pool)
	if err != nil {
		return Distribution{}, err
	}

	payload, err := codec.Encode(assignments)
	if err != nil {
		return Distribution{}, err
	}

	passwords := make(map[string]string, len(assignments))
	for _, a := range assignments {
		passwords[a.ParticipantName] = a.Password
	}

	return Distribution{Payload: payload, Passwords: passwords}, nil
}

func readWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer file.Close()

	var list []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			list = append(list, word)
		}
	}
	return list, scanner.Err()
}
