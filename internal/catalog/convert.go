package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/Shu5555/jinro-app/internal/model"
)

// Survey column headers look like "1-1 role", "1-2 ability",
// "5-3 win condition": section number, then field number, then a label.
// Sections 1-2 are werewolf roles, 3-4 villager roles, and anything
// higher third-party. Only third-party sections carry a win condition
// column; the other teams get their team default.
var surveyColPattern = regexp.MustCompile(`^(\d+)-(\d)\b`)

// Survey field numbers within a section
const (
	surveyFieldName         = 1
	surveyFieldAbility      = 2
	surveyFieldWinCondition = 3
)

// surveyAuthorColumn is the header of the respondent-name column
const surveyAuthorColumn = "name"

type surveyColumns struct {
	name         []int
	ability      []int
	winCondition []int
}

func teamForSection(section int) model.Team {
	switch {
	case section <= 2:
		return model.TeamWerewolf
	case section <= 4:
		return model.TeamVillager
	default:
		return model.TeamThirdParty
	}
}

// ConvertSurvey turns a role-survey spreadsheet export into normalized
// role records. Each response row may contribute one role per survey
// section; when two respondents submit the same role name, the first
// occurrence wins.
func ConvertSurvey(r io.Reader) ([]model.Role, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading survey header: %w", err)
	}

	groups := map[model.Team]*surveyColumns{
		model.TeamWerewolf:   {},
		model.TeamVillager:   {},
		model.TeamThirdParty: {},
	}
	authorIdx := -1

	for i, h := range header {
		h = strings.TrimSpace(h)
		if strings.EqualFold(h, surveyAuthorColumn) {
			authorIdx = i
			continue
		}
		m := surveyColPattern.FindStringSubmatch(h)
		if m == nil {
			continue
		}
		section, _ := strconv.Atoi(m[1])
		field, _ := strconv.Atoi(m[2])
		team := teamForSection(section)

		switch field {
		case surveyFieldName:
			groups[team].name = append(groups[team].name, i)
		case surveyFieldAbility:
			groups[team].ability = append(groups[team].ability, i)
		case surveyFieldWinCondition:
			if team == model.TeamThirdParty {
				groups[team].winCondition = append(groups[team].winCondition, i)
			}
		}
	}

	if authorIdx == -1 {
		return nil, fmt.Errorf("survey is missing the %q column", surveyAuthorColumn)
	}

	cell := func(record []string, i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var roles []model.Role
	seen := make(map[string]bool)

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading survey: %w", err)
		}

		author := cell(record, authorIdx)

		for _, team := range []model.Team{model.TeamWerewolf, model.TeamVillager, model.TeamThirdParty} {
			cols := groups[team]
			for j, nameIdx := range cols.name {
				roleName := cell(record, nameIdx)
				if roleName == "" || seen[roleName] {
					continue
				}
				seen[roleName] = true

				role := model.Role{
					Name:   roleName,
					Team:   team,
					Author: author,
				}
				if j < len(cols.ability) {
					role.Ability = cell(record, cols.ability[j])
				}
				if team == model.TeamThirdParty {
					if j < len(cols.winCondition) {
						role.WinCondition = cell(record, cols.winCondition[j])
					}
				} else {
					role.WinCondition = team.DefaultWinCondition()
				}
				roles = append(roles, role)
			}
		}
	}

	return roles, nil
}
