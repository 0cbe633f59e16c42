package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Shu5555/jinro-app/internal/model"
)

// Column names for the normalized role sheet. Header matching is
// case-insensitive and unknown columns are ignored, so sheets exported
// from spreadsheet tools with extra columns still load.
const (
	colName             = "name"
	colTeam             = "team"
	colCategory         = "category"
	colAbility          = "ability"
	colWinCondition     = "win_condition"
	colFortuneResult    = "fortune_result"
	colRelatedRole      = "related_role"
	colRelatedRoleCount = "related_role_count"
	colAuthor           = "author"
)

// ReadRoles parses a normalized role sheet: delimited text with a
// header row. Rows with an empty name are skipped, matching how blank
// spreadsheet rows export.
func ReadRoles(r io.Reader) ([]model.Role, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading role sheet header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := idx[colName]; !ok {
		return nil, fmt.Errorf("role sheet is missing the %q column", colName)
	}
	if _, ok := idx[colTeam]; !ok {
		return nil, fmt.Errorf("role sheet is missing the %q column", colTeam)
	}

	field := func(record []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var roles []model.Role
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading role sheet: %w", err)
		}
		line++

		name := field(record, colName)
		if name == "" {
			continue
		}

		team, ok := model.ParseTeam(field(record, colTeam))
		if !ok {
			return nil, &model.DataError{
				RoleName: name,
				Reason:   fmt.Sprintf("unknown team %q on line %d", field(record, colTeam), line),
			}
		}

		relatedCount := 0
		if raw := field(record, colRelatedRoleCount); raw != "" {
			relatedCount, err = strconv.Atoi(raw)
			if err != nil {
				return nil, &model.DataError{
					RoleName: name,
					Reason:   fmt.Sprintf("related role count %q is not a number", raw),
				}
			}
		}

		roles = append(roles, model.Role{
			Name:             name,
			Team:             team,
			Category:         field(record, colCategory),
			Ability:          field(record, colAbility),
			WinCondition:     field(record, colWinCondition),
			FortuneResult:    field(record, colFortuneResult),
			RelatedRoleName:  field(record, colRelatedRole),
			RelatedRoleCount: relatedCount,
			Author:           field(record, colAuthor),
		})
	}

	return roles, nil
}

// Load reads a normalized role sheet and builds a validated catalog
func Load(r io.Reader) (*Catalog, error) {
	roles, err := ReadRoles(r)
	if err != nil {
		return nil, err
	}
	return New(roles)
}

// WriteRoles writes roles as a normalized role sheet, the inverse of
// ReadRoles
func WriteRoles(w io.Writer, roles []model.Role) error {
	cw := csv.NewWriter(w)

	header := []string{
		colName, colTeam, colCategory, colAbility, colWinCondition,
		colFortuneResult, colRelatedRole, colRelatedRoleCount, colAuthor,
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range roles {
		count := ""
		if r.RelatedRoleCount > 0 {
			count = strconv.Itoa(r.RelatedRoleCount)
		}
		record := []string{
			r.Name, string(r.Team), r.Category, r.Ability, r.WinCondition,
			r.FortuneResult, r.RelatedRoleName, count, r.Author,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
