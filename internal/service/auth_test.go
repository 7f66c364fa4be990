package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuchYouth/otgil-Re-Thread/internal/domain"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository"
	"github.com/MuchYouth/otgil-Re-Thread/internal/repository/store"
	"github.com/MuchYouth/otgil-Re-Thread/internal/service"
)

const testAdminCode = "TEST-ADMIN-CODE"

func newAuthService() *service.AuthService {
	return service.NewAuthService(repository.NewUserRepository(store.New()), testAdminCode)
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	created, err := svc.Signup(ctx, domain.User{
		Nickname: "Newbie",
		Email:    "newbie@example.com",
		Password: "password1",
	}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	// The stored password is a hash, never the plaintext.
	assert.NotEqual(t, "password1", created.Password)

	user, err := svc.Login(ctx, "newbie@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	_, err = svc.Login(ctx, "newbie@example.com", "wrongpass1")
	assert.ErrorIs(t, err, service.ErrWrongPassword)

	_, err = svc.Login(ctx, "nobody@example.com", "password1")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestAuthService_DuplicateEmail(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{Nickname: "A", Email: "a@example.com", Password: "password1"}, "")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, domain.User{Nickname: "B", Email: "a@example.com", Password: "password2"}, "")
	assert.ErrorIs(t, err, service.ErrUserEmailExists)
}

func TestAuthService_AdminSignupRequiresCode(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, domain.User{
		Nickname: "WannabeAdmin",
		Email:    "admin@example.com",
		Password: "password1",
		IsAdmin:  true,
	}, "wrong-code")
	assert.ErrorIs(t, err, service.ErrWrongAdminCode)

	admin, err := svc.Signup(ctx, domain.User{
		Nickname: "RealAdmin",
		Email:    "admin@example.com",
		Password: "password1",
		IsAdmin:  true,
	}, testAdminCode)
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)
}
