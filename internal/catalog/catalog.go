package catalog

import (
	"fmt"

	"github.com/Shu5555/jinro-app/internal/model"
)

// Catalog holds parsed role definitions grouped by team, with a flat
// lookup by name. Catalogs are validated at build time and immutable
// afterwards; reloading a role sheet replaces the catalog wholesale.
type Catalog struct {
	byTeam map[model.Team][]model.Role
	byName map[string]model.Role
	count  int
}

// New builds a catalog from normalized role records. It fails with a
// DataError if a role name is empty or duplicated, a team is unknown,
// or a related-role reference does not resolve. Team-default win
// conditions and fortune results are filled in here, so roles returned
// from the catalog are always complete.
func New(roles []model.Role) (*Catalog, error) {
	c := &Catalog{
		byTeam: make(map[model.Team][]model.Role),
		byName: make(map[string]model.Role, len(roles)),
	}

	for _, r := range roles {
		if r.Name == "" {
			return nil, model.ErrEmptyRoleName
		}
		if !r.Team.Valid() {
			return nil, &model.DataError{RoleName: r.Name, Reason: fmt.Sprintf("unknown team %q", r.Team)}
		}
		if r.RelatedRoleCount < 0 {
			return nil, &model.DataError{RoleName: r.Name, Reason: "negative related role count"}
		}
		if _, exists := c.byName[r.Name]; exists {
			return nil, &model.DataError{RoleName: r.Name, Reason: "duplicate role name"}
		}

		normalized := r.Normalized()
		c.byName[r.Name] = normalized
		c.byTeam[r.Team] = append(c.byTeam[r.Team], normalized)
		c.count++
	}

	if c.count == 0 {
		return nil, model.ErrEmptyCatalog
	}

	// Related-role references must resolve before any assignment run
	// starts, not be discovered mid-run.
	for _, r := range c.byName {
		if r.RelatedRoleCount > 0 {
			if _, ok := c.byName[r.RelatedRoleName]; !ok {
				return nil, &model.DataError{
					RoleName: r.Name,
					Reason:   fmt.Sprintf("related role %q does not exist", r.RelatedRoleName),
				}
			}
		}
	}

	return c, nil
}

// RolesOf returns all roles of the given team, in catalog order.
// If category is non-empty, only roles of that category are returned.
// The returned slice is a copy and safe for the caller to mutate.
func (c *Catalog) RolesOf(team model.Team, category string) []model.Role {
	var roles []model.Role
	for _, r := range c.byTeam[team] {
		if category == "" || r.Category == category {
			roles = append(roles, r)
		}
	}
	return roles
}

// FindByName performs an exact-match lookup by role name
func (c *Catalog) FindByName(name string) (model.Role, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Len returns the total number of roles across all teams
func (c *Catalog) Len() int {
	return c.count
}
