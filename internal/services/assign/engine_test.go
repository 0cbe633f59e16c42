package assign

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Shu5555/jinro-app/internal/catalog"
	"github.com/Shu5555/jinro-app/internal/dependencies/mocks"
	"github.com/Shu5555/jinro-app/internal/dependencies/random"
	"github.com/Shu5555/jinro-app/internal/model"
	"github.com/Shu5555/jinro-app/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	random *mocks.MockRandom
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.engine = New(s.random, testutil.NopLogger())
}

func (s *EngineSuite) buildCatalog(roles []model.Role) *catalog.Catalog {
	cat, err := catalog.New(roles)
	s.Require().NoError(err)
	return cat
}

func (s *EngineSuite) standardCatalog() *catalog.Catalog {
	return s.buildCatalog([]model.Role{
		{Name: "Werewolf", Team: model.TeamWerewolf, Category: model.CategoryGeneral},
		{Name: "Great Wolf", Team: model.TeamWerewolf, Category: "special"},
		{Name: "Villager", Team: model.TeamVillager, Category: model.CategoryGeneral},
		{Name: "Seer", Team: model.TeamVillager, Category: "divination"},
		{Name: "Hunter", Team: model.TeamVillager, Category: "guard"},
	})
}

func defaultPool() []string {
	return []string{"apple", "orange", "banana", "cherry", "grape", "peach"}
}

func (s *EngineSuite) TestAssignBindsEveryParticipantOnce() {
	req := Request{
		Participants: []string{"alice", "bob", "carol"},
		Counts: []CountRequest{
			{Team: model.TeamWerewolf, Category: model.CategoryGeneral, Count: 1},
			{Team: model.TeamVillager, Count: 2},
		},
	}

	assignments, err := s.engine.Assign(s.standardCatalog(), req, defaultPool())
	s.Require().NoError(err)
	s.Require().Len(assignments, 3)

	seenParticipants := make(map[string]bool)
	seenPasswords := make(map[string]bool)
	for _, a := range assignments {
		s.False(seenParticipants[a.ParticipantName], "participant %s bound twice", a.ParticipantName)
		s.False(seenPasswords[a.Password], "password %s issued twice", a.Password)
		seenParticipants[a.ParticipantName] = true
		seenPasswords[a.Password] = true
		s.NotEmpty(a.Role.Name)
	}
	s.True(seenParticipants["alice"])
	s.True(seenParticipants["bob"])
	s.True(seenParticipants["carol"])
}

func (s *EngineSuite) TestAssignPreservesTeamTotals() {
	req := Request{
		Participants: []string{"a", "b", "c", "d"},
		Counts: []CountRequest{
			{Team: model.TeamWerewolf, Count: 1},
			{Team: model.TeamVillager, Count: 3},
		},
	}

	assignments, err := s.engine.Assign(s.standardCatalog(), req, defaultPool())
	s.Require().NoError(err)

	teams := map[model.Team]int{}
	for _, a := range assignments {
		teams[a.Role.Team]++
	}
	s.Equal(1, teams[model.TeamWerewolf])
	s.Equal(3, teams[model.TeamVillager])
}

func (s *EngineSuite) TestAssignDrawsDistinctRoles() {
	req := Request{
		Participants: []string{"a", "b", "c"},
		Counts:       []CountRequest{{Team: model.TeamVillager, Count: 3}},
	}

	assignments, err := s.engine.Assign(s.standardCatalog(), req, defaultPool())
	s.Require().NoError(err)

	names := make(map[string]bool)
	for _, a := range assignments {
		s.False(names[a.Role.Name], "role %s drawn twice", a.Role.Name)
		names[a.Role.Name] = true
	}
}

func (s *EngineSuite) TestAssignRejectsEmptyParticipants() {
	req := Request{
		Counts: []CountRequest{{Team: model.TeamVillager, Count: 1}},
	}
	_, err := s.engine.Assign(s.standardCatalog(), req, defaultPool())
	s.ErrorIs(err, model.ErrNoParticipants)
}

func (s *EngineSuite) TestAssignRejectsCountMismatch() {
	req := Request{
		Participants: []string{"alice", "bob"},
		Counts:       []CountRequest{{Team: model.TeamVillager, Count: 3}},
	}
	_, err := s.engine.Assign(s.standardCatalog(), req, defaultPool())

	var mismatch *model.CountMismatchError
	s.Require().ErrorAs(err, &mismatch)
	s.Equal(2, mismatch.ParticipantCount)
	s.Equal(3, mismatch.RoleCount)
}

func (s *EngineSuite) TestAssignRejectsNegativeCount() {
	req := Request{
		Participants: []string{"alice"},
		Counts: []CountRequest{
			{Team: model.TeamVillager, Count: 2},
			{Team: model.TeamWerewolf, Count: -1},
		},
	}
	_, err := s.engine.Assign(s.standardCatalog(), req, defaultPool())
	s.Error(err)
}

func (s *EngineSuite) TestAssignReportsInsufficientRolesWithCategory() {
	req := Request{
		Participants: []string{"a", "b", "c"},
		Counts:       []CountRequest{{Team: model.TeamWerewolf, Category: model.CategoryGeneral, Count: 3}},
	}
	_, err := s.engine.Assign(s.standardCatalog(), req, defaultPool())

	var insufficient *model.InsufficientRolesError
	s.Require().ErrorAs(err, &insufficient)
	s.Equal(model.TeamWerewolf, insufficient.Team)
	s.Equal(model.CategoryGeneral, insufficient.Category)
	s.Equal(3, insufficient.Required)
	s.Equal(1, insufficient.Available)
}

func (s *EngineSuite) TestAssignRejectsExhaustedPool() {
	req := Request{
		Participants: []string{"a", "b", "c"},
		Counts:       []CountRequest{{Team: model.TeamVillager, Count: 3}},
	}
	_, err := s.engine.Assign(s.standardCatalog(), req, []string{"apple", "orange"})

	var exhausted *model.PoolExhaustedError
	s.Require().ErrorAs(err, &exhausted)
	s.Equal(3, exhausted.ParticipantCount)
	s.Equal(2, exhausted.PoolSize)
}

// Related-role expansion

func (s *EngineSuite) TestAssignExpandsRelatedRoles() {
	req := Request{
		Participants: []string{"a", "b", "c", "d"},
		Counts: []CountRequest{
			{Team: model.TeamWerewolf, Count: 1},
			{Team: model.TeamVillager, Count: 2},
			{Team: model.TeamThirdParty, Category: "fox", Count: 1},
		},
	}
	cat := s.buildCatalog([]model.Role{
		{Name: "Werewolf", Team: model.TeamWerewolf, Category: model.CategoryGeneral},
		{Name: "Villager", Team: model.TeamVillager, Category: model.CategoryGeneral},
		{Name: "Fox", Team: model.TeamThirdParty, Category: "fox", RelatedRoleName: "Immoral", RelatedRoleCount: 1},
		{Name: "Immoral", Team: model.TeamThirdParty, Category: "companion", WinCondition: "die with the fox"},
	})

	assignments, err := s.engine.Assign(cat, req, defaultPool())
	s.Require().NoError(err)
	s.Require().Len(assignments, 4)

	names := map[string]int{}
	for _, a := range assignments {
		names[a.Role.Name]++
	}
	s.Equal(1, names["Fox"])
	s.Equal(1, names["Immoral"], "companion role must be added")
	s.Equal(1, names["Werewolf"], "non-filler teams keep their draw")
	s.Equal(1, names["Villager"], "one filler removed, one kept")
}

func (s *EngineSuite) TestExpansionRemovesVillagerFillerFirst() {
	cat := s.buildCatalog([]model.Role{
		{Name: "Werewolf", Team: model.TeamWerewolf, Category: model.CategoryGeneral},
		{Name: "Villager", Team: model.TeamVillager, Category: model.CategoryGeneral},
		{Name: "Fox", Team: model.TeamThirdParty, Category: "fox", RelatedRoleName: "Immoral", RelatedRoleCount: 1},
		{Name: "Immoral", Team: model.TeamThirdParty, Category: "companion"},
	})

	drawn := []model.Role{
		mustFind(cat, "Werewolf"),
		mustFind(cat, "Villager"),
		mustFind(cat, "Fox"),
	}

	expanded, err := s.engine.expandRelatedRoles(cat, drawn)
	s.Require().NoError(err)
	s.Require().Len(expanded, 3)

	names := map[string]bool{}
	for _, r := range expanded {
		names[r.Name] = true
	}
	s.False(names["Villager"], "villager filler is removed before werewolf filler")
	s.True(names["Werewolf"])
	s.True(names["Immoral"])
}

func (s *EngineSuite) TestExpansionFallsBackToAnyFiller() {
	cat := s.buildCatalog([]model.Role{
		{Name: "Werewolf", Team: model.TeamWerewolf, Category: model.CategoryGeneral},
		{Name: "Fox", Team: model.TeamThirdParty, Category: "fox", RelatedRoleName: "Immoral", RelatedRoleCount: 1},
		{Name: "Immoral", Team: model.TeamThirdParty, Category: "companion"},
	})

	drawn := []model.Role{
		mustFind(cat, "Werewolf"),
		mustFind(cat, "Fox"),
	}

	expanded, err := s.engine.expandRelatedRoles(cat, drawn)
	s.Require().NoError(err)

	names := map[string]bool{}
	for _, r := range expanded {
		names[r.Name] = true
	}
	s.False(names["Werewolf"], "the only filler left is removed")
	s.True(names["Immoral"])
}

func (s *EngineSuite) TestExpansionFailsWithoutFillers() {
	cat := s.buildCatalog([]model.Role{
		{Name: "Seer", Team: model.TeamVillager, Category: "divination"},
		{Name: "Fox", Team: model.TeamThirdParty, Category: "fox", RelatedRoleName: "Immoral", RelatedRoleCount: 1},
		{Name: "Immoral", Team: model.TeamThirdParty, Category: "companion"},
	})

	drawn := []model.Role{
		mustFind(cat, "Seer"),
		mustFind(cat, "Fox"),
	}

	_, err := s.engine.expandRelatedRoles(cat, drawn)

	var subErr *model.SubstitutionError
	s.Require().ErrorAs(err, &subErr)
	s.Equal("Fox", subErr.RoleName)
	s.Equal("Immoral", subErr.RelatedRoleName)
}

func (s *EngineSuite) TestExpansionNeverRemovesMandatingRoles() {
	// The only filler-shaped role also mandates a companion; it must
	// not be removed to make room for its own companion.
	cat := s.buildCatalog([]model.Role{
		{Name: "Fox", Team: model.TeamThirdParty, Category: model.CategoryGeneral, RelatedRoleName: "Immoral", RelatedRoleCount: 1},
		{Name: "Immoral", Team: model.TeamThirdParty, Category: "companion"},
	})

	drawn := []model.Role{mustFind(cat, "Fox")}

	_, err := s.engine.expandRelatedRoles(cat, drawn)

	var subErr *model.SubstitutionError
	s.Require().ErrorAs(err, &subErr)
}

func (s *EngineSuite) TestExpansionHonorsRelatedRoleCount() {
	cat := s.buildCatalog([]model.Role{
		{Name: "Villager", Team: model.TeamVillager, Category: model.CategoryGeneral},
		{Name: "Fox", Team: model.TeamThirdParty, Category: "fox", RelatedRoleName: "Immoral", RelatedRoleCount: 2},
		{Name: "Immoral", Team: model.TeamThirdParty, Category: "companion"},
	})

	drawn := []model.Role{
		mustFind(cat, "Villager"),
		mustFind(cat, "Villager"),
		mustFind(cat, "Fox"),
	}

	expanded, err := s.engine.expandRelatedRoles(cat, drawn)
	s.Require().NoError(err)
	s.Require().Len(expanded, 3)

	count := 0
	for _, r := range expanded {
		if r.Name == "Immoral" {
			count++
		}
	}
	s.Equal(2, count)
}

func mustFind(cat *catalog.Catalog, name string) model.Role {
	r, ok := cat.FindByName(name)
	if !ok {
		panic("role not in catalog: " + name)
	}
	return r
}

// Fairness uses the real random source: with enough runs every
// participant must receive the single werewolf role a reasonable share
// of the time.
func TestAssignFairnessAcrossParticipants(t *testing.T) {
	cat, err := catalog.New([]model.Role{
		{Name: "Werewolf", Team: model.TeamWerewolf, Category: model.CategoryGeneral},
		{Name: "Villager", Team: model.TeamVillager, Category: model.CategoryGeneral},
		{Name: "Seer", Team: model.TeamVillager, Category: "divination"},
	})
	if err != nil {
		t.Fatal(err)
	}

	engine := New(random.New(), testutil.NopLogger())
	req := Request{
		Participants: []string{"alice", "bob", "carol"},
		Counts: []CountRequest{
			{Team: model.TeamWerewolf, Count: 1},
			{Team: model.TeamVillager, Count: 2},
		},
	}
	pool := []string{"apple", "orange", "banana"}

	const runs = 3000
	wolfCounts := map[string]int{}
	for i := 0; i < runs; i++ {
		assignments, err := engine.Assign(cat, req, pool)
		if err != nil {
			t.Fatal(err)
		}
		for _, a := range assignments {
			if a.Role.Team == model.TeamWerewolf {
				wolfCounts[a.ParticipantName]++
			}
		}
	}

	// Expected share is 1/3; a uniform binding stays well within
	// these bounds at 3000 runs.
	for _, name := range req.Participants {
		share := float64(wolfCounts[name]) / runs
		if share < 0.25 || share > 0.42 {
			t.Errorf("participant %s received the werewolf role in %.1f%% of runs", name, share*100)
		}
	}
}
