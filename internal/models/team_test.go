package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTeamValidState(t *testing.T) {
	team, err := NewTeam("Cubs", 3, 5, GenderMixed)
	require.NoError(t, err)
	assert.Equal(t, "Cubs", team.Name)
	assert.Equal(t, "3 - 5 años", team.AgeRange())
}

func TestNewTeamInvalidStates(t *testing.T) {
	cases := []struct {
		name     string
		teamName string
		start    int
		end      int
		gender   TeamGender
	}{
		{"short name", "A", 3, 5, GenderMixed},
		{"empty name", "", 3, 5, GenderMixed},
		{"end equals start", "Cubs", 5, 5, GenderMixed},
		{"end below start", "Cubs", 6, 5, GenderMixed},
		{"negative start", "Cubs", -1, 5, GenderMixed},
		{"end above bound", "Cubs", 3, 101, GenderMixed},
		{"unknown gender", "Cubs", 3, 5, "Coed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTeam(tc.teamName, tc.start, tc.end, tc.gender)
			require.Error(t, err)
		})
	}
}

func TestApplyRevalidatesAndKeepsOldStateOnFailure(t *testing.T) {
	team, err := NewTeam("Cubs", 3, 5, GenderMixed)
	require.NoError(t, err)

	require.Error(t, team.Apply("Lions", 8, 2, GenderMale))

	// The failed mutation left the team untouched.
	assert.Equal(t, "Cubs", team.Name)
	assert.Equal(t, 3, team.AgeStart)
	assert.Equal(t, 5, team.AgeEnd)
	assert.Equal(t, GenderMixed, team.Gender)

	require.NoError(t, team.Apply("Lions", 6, 9, GenderMale))
	assert.Equal(t, "Lions", team.Name)
	assert.Equal(t, "6 - 9 años", team.AgeRange())
}
