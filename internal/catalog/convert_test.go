package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shu5555/jinro-app/internal/model"
)

const sampleSurvey = `name,1-1 role,1-2 ability,3-1 role,3-2 ability,5-1 role,5-2 ability,5-3 win condition
alice,Great Wolf,Survives one divination,Seer,Divines one player each night,Fox,Survives the attack,survive to the end
bob,Whisperer,Talks to wolves at night,Hunter,Guards one player,,,
`

func TestConvertSurvey(t *testing.T) {
	roles, err := ConvertSurvey(strings.NewReader(sampleSurvey))
	require.NoError(t, err)
	require.Len(t, roles, 5)

	byName := make(map[string]model.Role, len(roles))
	for _, r := range roles {
		byName[r.Name] = r
	}

	wolf := byName["Great Wolf"]
	assert.Equal(t, model.TeamWerewolf, wolf.Team)
	assert.Equal(t, "Survives one divination", wolf.Ability)
	assert.Equal(t, model.WinConditionWerewolf, wolf.WinCondition)
	assert.Equal(t, "alice", wolf.Author)

	seer := byName["Seer"]
	assert.Equal(t, model.TeamVillager, seer.Team)
	assert.Equal(t, model.WinConditionVillager, seer.WinCondition)

	fox := byName["Fox"]
	assert.Equal(t, model.TeamThirdParty, fox.Team)
	assert.Equal(t, "survive to the end", fox.WinCondition)

	hunter := byName["Hunter"]
	assert.Equal(t, "bob", hunter.Author)
}

func TestConvertSurveyFirstOccurrenceWins(t *testing.T) {
	survey := `name,3-1 role,3-2 ability
alice,Seer,Divines one player each night
bob,Seer,Divines two players each night
`
	roles, err := ConvertSurvey(strings.NewReader(survey))
	require.NoError(t, err)
	require.Len(t, roles, 1)

	assert.Equal(t, "alice", roles[0].Author)
	assert.Equal(t, "Divines one player each night", roles[0].Ability)
}

func TestConvertSurveySkipsEmptyRoleCells(t *testing.T) {
	survey := `name,1-1 role,3-1 role
alice,,Seer
`
	roles, err := ConvertSurvey(strings.NewReader(survey))
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Seer", roles[0].Name)
}

func TestConvertSurveySectionTeams(t *testing.T) {
	survey := `name,2-1 role,4-1 role,7-1 role
alice,Lone Wolf,Medium,Hanged Man
`
	roles, err := ConvertSurvey(strings.NewReader(survey))
	require.NoError(t, err)
	require.Len(t, roles, 3)

	teams := map[string]model.Team{}
	for _, r := range roles {
		teams[r.Name] = r.Team
	}
	assert.Equal(t, model.TeamWerewolf, teams["Lone Wolf"])
	assert.Equal(t, model.TeamVillager, teams["Medium"])
	assert.Equal(t, model.TeamThirdParty, teams["Hanged Man"])
}

func TestConvertSurveyRequiresAuthorColumn(t *testing.T) {
	_, err := ConvertSurvey(strings.NewReader("1-1 role\nSeer\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestConvertSurveyIgnoresUnrelatedColumns(t *testing.T) {
	survey := `timestamp,name,1-1 role,comments
2024/01/01,alice,Werewolf,great survey
`
	roles, err := ConvertSurvey(strings.NewReader(survey))
	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Werewolf", roles[0].Name)
}
