package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserStoresHashedPassword(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Users.CreateUser(ctx, "maria", "Secretaria", "s3cret"))

	user, err := store.Users.GetByUsername(ctx, "maria")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "maria", user.Username)
	assert.Equal(t, "Secretaria", user.Role)
	assert.NotEqual(t, "s3cret", user.Password)
	assert.NotEmpty(t, user.Password)
}

func TestLoginOutcomes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Users.CreateUser(ctx, "maria", "Secretaria", "s3cret"))

	ok, err := store.Users.Login(ctx, "maria", "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Users.Login(ctx, "maria", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Users.Login(ctx, "nobody", "s3cret")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdatePasswordRotatesCredential(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Users.CreateUser(ctx, "maria", "Secretaria", "old"))

	n, err := store.Users.UpdatePassword(ctx, "maria", "new")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	ok, err := store.Users.Login(ctx, "maria", "old")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Users.Login(ctx, "maria", "new")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdateRoleAndDeleteUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Users.CreateUser(ctx, "maria", "Secretaria", "s3cret"))

	n, err := store.Users.UpdateRole(ctx, "maria", "Administrador")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	user, err := store.Users.GetByUsername(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, "Administrador", user.Role)

	n, err = store.Users.DeleteUser(ctx, "maria")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	exists, err := store.Users.Exists(ctx, "maria")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBootstrapSeedsAdminOnce(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// newTestStore already bootstrapped; a second run must not duplicate.
	require.NoError(t, store.Bootstrap(ctx, "admin", "Administrador", "admin"))

	users, err := store.Users.AllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "Administrador", users[0].Role)

	ok, err := store.Users.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	assert.True(t, ok)
}
