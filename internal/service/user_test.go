package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

func newSeededUserService(t *testing.T) *service.UserService {
	t.Helper()

	st := store.New()
	require.NoError(t, store.Seed(st))

	return service.NewUserService(repository.NewUserRepository(st))
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc := newSeededUserService(t)
	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, "user1", "NewNickname", "")
	require.NoError(t, err)
	assert.Equal(t, "NewNickname", updated.Nickname)

	// Blank fields keep their current values.
	again, err := svc.UpdateProfile(ctx, "user1", "", "010-9999-0000")
	require.NoError(t, err)
	assert.Equal(t, "NewNickname", again.Nickname)
	assert.Equal(t, "010-9999-0000", again.PhoneNumber)
}

func TestUserService_SetNeighborsValidatesExistence(t *testing.T) {
	svc := newSeededUserService(t)
	ctx := context.Background()

	_, err := svc.SetNeighbors(ctx, "user1", []string{"user2", "ghost"})
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	updated, err := svc.SetNeighbors(ctx, "user1", []string{"user2", "user3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"user2", "user3"}, updated.Neighbors)
}

func TestUserService_ToggleNeighbor(t *testing.T) {
	svc := newSeededUserService(t)
	ctx := context.Background()

	added, err := svc.ToggleNeighbor(ctx, "user1", "user3")
	require.NoError(t, err)
	assert.True(t, added.HasNeighbor("user3"))

	removed, err := svc.ToggleNeighbor(ctx, "user1", "user3")
	require.NoError(t, err)
	assert.False(t, removed.HasNeighbor("user3"))
}
