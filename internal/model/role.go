package model

import "strings"

// Team is the victory faction a role belongs to
type Team string

const (
	TeamVillager   Team = "villager"
	TeamWerewolf   Team = "werewolf"
	TeamThirdParty Team = "third_party"
)

// CategoryGeneral marks filler roles that related-role substitution may
// remove to keep the assignment total constant
const CategoryGeneral = "general"

// Team-default strings applied when the source data leaves them blank.
// Third-party roles never receive a synthesized win condition.
const (
	WinConditionWerewolf = "eliminate everyone outside the werewolf faction"
	WinConditionVillager = "eliminate all werewolves"

	FortuneResultWerewolf    = "werewolf-aligned"
	FortuneResultNotWerewolf = "not a werewolf"
)

// Valid returns true if the team is one of the three known factions
func (t Team) Valid() bool {
	switch t {
	case TeamVillager, TeamWerewolf, TeamThirdParty:
		return true
	}
	return false
}

// ParseTeam maps a raw team string to a Team, tolerating case and a few
// spellings that show up in hand-edited role sheets
func ParseTeam(s string) (Team, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "villager", "village", "villagers":
		return TeamVillager, true
	case "werewolf", "wolf", "werewolves":
		return TeamWerewolf, true
	case "third_party", "third-party", "third party", "third":
		return TeamThirdParty, true
	}
	return "", false
}

// DefaultWinCondition returns the team's default win condition, or empty
// for third-party roles which must supply their own
func (t Team) DefaultWinCondition() string {
	switch t {
	case TeamWerewolf:
		return WinConditionWerewolf
	case TeamVillager:
		return WinConditionVillager
	}
	return ""
}

// DefaultFortuneResult returns what a seer sees for a role of this team
// when the role does not override it
func (t Team) DefaultFortuneResult() string {
	if t == TeamWerewolf {
		return FortuneResultWerewolf
	}
	return FortuneResultNotWerewolf
}

// Role is one playable role definition. Roles are built once when a
// catalog is loaded and never mutated afterwards.
type Role struct {
	Name             string `json:"name"`
	Team             Team   `json:"team"`
	Category         string `json:"category,omitempty"`
	Ability          string `json:"ability,omitempty"`
	WinCondition     string `json:"win_condition,omitempty"`
	FortuneResult    string `json:"fortune_result,omitempty"`
	RelatedRoleName  string `json:"related_role_name,omitempty"`
	RelatedRoleCount int    `json:"related_role_count,omitempty"`
	Author           string `json:"author,omitempty"`
}

// IsFiller returns true if substitution may remove this role to make
// room for a related role
func (r Role) IsFiller() bool {
	return r.Category == CategoryGeneral
}

// Normalized returns a copy with the team-default win condition and
// fortune result filled in where the source data left them blank
func (r Role) Normalized() Role {
	if r.WinCondition == "" {
		r.WinCondition = r.Team.DefaultWinCondition()
	}
	if r.FortuneResult == "" {
		r.FortuneResult = r.Team.DefaultFortuneResult()
	}
	if r.Author == "" {
		r.Author = "unknown"
	}
	return r
}
