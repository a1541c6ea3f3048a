package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenericInsertAssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Courses.Insert(ctx, Record{"name": "Math", "level": 1})
	require.NoError(t, err)
	second, err := store.Courses.Insert(ctx, Record{"name": "History", "level": 2})
	require.NoError(t, err)

	assert.Equal(t, first+1, second)
}

func TestGenericGetNormalizesDateColumns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Cycles.Insert(ctx, Record{
		"cicle":      "A",
		"date_start": "2024-01-15",
		"date_end":   "2024-06-30",
		"manager":    "Ana",
	})
	require.NoError(t, err)

	rec, err := store.Cycles.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "A", rec["cicle"])
	assert.Equal(t, "2024-01-15", rec["date_start"])
	assert.Equal(t, "2024-06-30", rec["date_end"])
	assert.Equal(t, "Ana", rec["manager"])
}

func TestGenericGetMissingRowReturnsNil(t *testing.T) {
	store := newTestStore(t)

	rec, err := store.Courses.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestGenericUpdateMatchesExactly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Courses.Insert(ctx, Record{"name": "Math", "level": 1})
	require.NoError(t, err)
	_, err = store.Courses.Insert(ctx, Record{"name": "Mathematics", "level": 1})
	require.NoError(t, err)

	// Equality on the filter, not a substring match.
	n, err := store.Courses.Update(ctx, Record{"level": 2}, Record{"name": "Math"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGenericUpdateRequiresFilter(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Courses.Update(context.Background(), Record{"level": 2}, Record{})
	require.Error(t, err)
}

func TestGenericDeleteMatchesExactly(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Courses.Insert(ctx, Record{"name": "Math", "level": 1})
	require.NoError(t, err)
	_, err = store.Courses.Insert(ctx, Record{"name": "Mathematics", "level": 1})
	require.NoError(t, err)

	n, err := store.Courses.Delete(ctx, Record{"name": "Math"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 1, countRows(t, store.Courses.Generic))
}

func TestGenericListWithoutSearchReturnsAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Math", "History", "Art"} {
		_, err := store.Courses.Insert(ctx, Record{"name": name, "level": 1})
		require.NoError(t, err)
	}

	rows, err := store.Courses.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestGenericListSearchIsFuzzyAndCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Math", "Mathematics", "History"} {
		_, err := store.Courses.Insert(ctx, Record{"name": name, "level": 1})
		require.NoError(t, err)
	}

	rows, err := store.Courses.List(ctx, Record{"name": "math"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestGenericListSearchCombinesColumnsWithOr(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	seed := []Record{
		{"name": "Pedro", "lastname": "Lopez", "phone": "111", "date_baptism": "2010-01-01", "date_of_birth": "2000-01-01", "id_team": 1},
		{"name": "Maria", "lastname": "Perez", "phone": "222", "date_baptism": "2010-01-01", "date_of_birth": "2000-01-01", "id_team": 1},
		{"name": "Juan", "lastname": "Gomez", "phone": "333", "date_baptism": "2010-01-01", "date_of_birth": "2000-01-01", "id_team": 1},
	}
	require.NoError(t, store.Students.InsertMany(ctx, seed))

	// "pe" hits Pedro by name and Perez by lastname.
	rows, err := store.Students.List(ctx, Record{"name": "pe", "lastname": "pe"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestGenericInsertManyRejectsMismatchedColumns(t *testing.T) {
	store := newTestStore(t)

	err := store.Courses.InsertMany(context.Background(), []Record{
		{"name": "Math", "level": 1},
		{"name": "History"},
	})
	require.Error(t, err)
}

func TestGenericFirstByFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Courses.Insert(ctx, Record{"name": "Math", "level": 3})
	require.NoError(t, err)

	rec, err := store.Courses.First(ctx, Record{"name": "Math", "level": 3})
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(3), rec["level"])

	rec, err = store.Courses.First(ctx, Record{"name": "Math", "level": 4})
	require.NoError(t, err)
	assert.Nil(t, rec)
}
