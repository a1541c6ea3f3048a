package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadely/academia-api/internal/models"
)

func TestCreateTeamRejectsInvalidState(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cases := []struct {
		name string
		team models.Team
	}{
		{"name too short", models.Team{Name: "A", AgeStart: 3, AgeEnd: 5, Gender: models.GenderMixed}},
		{"age end not above start", models.Team{Name: "Cubs", AgeStart: 5, AgeEnd: 5, Gender: models.GenderMixed}},
		{"age out of bounds", models.Team{Name: "Cubs", AgeStart: 3, AgeEnd: 120, Gender: models.GenderMixed}},
		{"unknown gender", models.Team{Name: "Cubs", AgeStart: 3, AgeEnd: 5, Gender: "Other"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			team := tc.team
			require.Error(t, store.Teams.CreateTeam(ctx, &team))
		})
	}

	assert.Equal(t, 0, countRows(t, store.Teams.Generic))
}

func TestTeamCRUDRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	team := &models.Team{Name: "Cubs", AgeStart: 3, AgeEnd: 5, Gender: models.GenderMixed}
	require.NoError(t, store.Teams.CreateTeam(ctx, team))
	require.NotZero(t, team.ID)

	got, err := store.Teams.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Cubs", got.Name)
	assert.Equal(t, models.GenderMixed, got.Gender)

	team.Name = "Lions"
	team.AgeEnd = 6
	updated, err := store.Teams.UpdateTeam(ctx, team)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err = store.Teams.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lions", got.Name)
	assert.Equal(t, 6, got.AgeEnd)

	deleted, err := store.Teams.DeleteTeam(ctx, team.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = store.Teams.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateTeamKeepsInvalidStateOut(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	team := &models.Team{Name: "Cubs", AgeStart: 3, AgeEnd: 5, Gender: models.GenderMixed}
	require.NoError(t, store.Teams.CreateTeam(ctx, team))

	bad := *team
	bad.AgeEnd = 2
	_, err := store.Teams.UpdateTeam(ctx, &bad)
	require.Error(t, err)

	got, err := store.Teams.GetTeamByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.AgeEnd)
}

func TestDeleteTeamMissingRow(t *testing.T) {
	store := newTestStore(t)

	deleted, err := store.Teams.DeleteTeam(context.Background(), 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func seedTeams(t *testing.T, store *Store) {
	t.Helper()
	ctx := context.Background()

	teams := []models.Team{
		{Name: "Little Lambs", AgeStart: 3, AgeEnd: 5, Gender: models.GenderMixed},
		{Name: "Explorers", AgeStart: 6, AgeEnd: 9, Gender: models.GenderMale},
		{Name: "Lambs of Grace", AgeStart: 10, AgeEnd: 14, Gender: models.GenderFemale},
	}
	for i := range teams {
		require.NoError(t, store.Teams.CreateTeam(ctx, &teams[i]))
	}
}

func TestSearchTeamsIsFuzzy(t *testing.T) {
	store := newTestStore(t)
	seedTeams(t, store)

	teams, err := store.Teams.SearchTeams(context.Background(), "lambs")
	require.NoError(t, err)
	assert.Len(t, teams, 2)
}

func TestTeamsByGenderIsExact(t *testing.T) {
	store := newTestStore(t)
	seedTeams(t, store)
	ctx := context.Background()

	// "Male" must not substring-match "Female".
	males, err := store.Teams.TeamsByGender(ctx, models.GenderMale)
	require.NoError(t, err)
	require.Len(t, males, 1)
	assert.Equal(t, "Explorers", males[0].Name)

	females, err := store.Teams.TeamsByGender(ctx, models.GenderFemale)
	require.NoError(t, err)
	require.Len(t, females, 1)
	assert.Equal(t, "Lambs of Grace", females[0].Name)
}

func TestTeamsByAgeRangeOverlap(t *testing.T) {
	store := newTestStore(t)
	seedTeams(t, store)
	ctx := context.Background()

	cases := []struct {
		name     string
		min, max int
		want     []string
	}{
		{"contains one band", 3, 5, []string{"Little Lambs"}},
		{"straddles two bands", 5, 6, []string{"Little Lambs", "Explorers"}},
		{"band inside query", 2, 15, []string{"Little Lambs", "Explorers", "Lambs of Grace"}},
		{"query inside band", 7, 8, []string{"Explorers"}},
		{"disjoint", 20, 30, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			teams, err := store.Teams.TeamsByAgeRange(ctx, tc.min, tc.max)
			require.NoError(t, err)

			var names []string
			for _, team := range teams {
				names = append(names, team.Name)
			}
			assert.ElementsMatch(t, tc.want, names)
		})
	}
}
