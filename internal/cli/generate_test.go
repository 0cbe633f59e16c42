package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCounts(t *testing.T) {
	counts, err := buildCounts(3, 2, 0, []string{"villager:divination:1"})
	require.NoError(t, err)
	require.Len(t, counts, 3)

	assert.Equal(t, countSpec{Team: "werewolf", Count: 2}, counts[0])
	assert.Equal(t, countSpec{Team: "villager", Count: 3}, counts[1])
	assert.Equal(t, countSpec{Team: "villager", Category: "divination", Count: 1}, counts[2])
}

func TestBuildCountsRejectsMalformedSpec(t *testing.T) {
	_, err := buildCounts(0, 0, 0, []string{"villager:1"})
	assert.Error(t, err)

	_, err = buildCounts(0, 0, 0, []string{"villager:divination:one"})
	assert.Error(t, err)
}

func TestBuildCountsRequiresAtLeastOne(t *testing.T) {
	_, err := buildCounts(0, 0, 0, nil)
	assert.Error(t, err)
}

func TestGenerateLocally(t *testing.T) {
	dir := t.TempDir()
	rolesPath := filepath.Join(dir, "roles.csv")
	sheet := "name,team,category\nWerewolf,werewolf,general\nVillager,villager,general\nSeer,villager,divination\n"
	require.NoError(t, os.WriteFile(rolesPath, []byte(sheet), 0600))

	counts, err := buildCounts(2, 1, 0, nil)
	require.NoError(t, err)

	result, err := generateLocally(rolesPath, "", []string{"alice", "bob", "carol"}, counts)
	require.NoError(t, err)

	assert.Empty(t, result.ID)
	assert.NotEmpty(t, result.Payload)
	assert.Len(t, result.Passwords, 3)
}

func TestGenerateLocallyWithWordFile(t *testing.T) {
	dir := t.TempDir()
	rolesPath := filepath.Join(dir, "roles.csv")
	require.NoError(t, os.WriteFile(rolesPath, []byte("name,team\nVillager,villager\n"), 0600))
	wordsPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(wordsPath, []byte("apple\norange\n"), 0600))

	counts, err := buildCounts(1, 0, 0, nil)
	require.NoError(t, err)

	result, err := generateLocally(rolesPath, wordsPath, []string{"alice"}, counts)
	require.NoError(t, err)

	assert.Contains(t, []string{"apple", "orange"}, result.Passwords["alice"])
}
