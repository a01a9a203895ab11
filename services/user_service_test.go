package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarthome-http-service/config"
	"smarthome-http-service/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		JWTTTL:               time.Hour,
		DefaultAdminPassword: "admin123",
		DefaultUserPassword:  "user123",
	}
}

func newTestUserService(t *testing.T) (*UserService, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	cfg := testConfig()
	return NewUserService(store, NewJWTService(cfg), cfg), store
}

func adminActor() *models.User {
	return &models.User{ID: "1", Username: "admin", Role: models.RoleAdmin}
}

func TestUserServiceSeedsDefaultAccounts(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestUserService(t)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, models.RoleAdmin, users[0].Role)
	assert.Equal(t, "user", users[1].Username)

	raw, err := store.Get(ctx, KeyUsers)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "admin123")
}

func TestUserServiceReseedsCorruptList(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestUserService(t)
	require.NoError(t, store.Set(ctx, KeyUsers, []byte("[{")))

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserServiceLoginLogout(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(t)

	_, err := svc.Login(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	result, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "1", result.User.ID)

	claims, user, err := svc.Authenticate(ctx, result.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.Equal(t, "admin", user.Username)

	require.NoError(t, svc.Logout(ctx, claims.ID))
	_, _, err = svc.Authenticate(ctx, result.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = svc.Authenticate(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(t)

	created, err := svc.Register(ctx, adminActor(), models.RegisterUserData{Username: "alice", Password: "secret123", Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.NotEmpty(t, created.ID)

	_, err = svc.Register(ctx, adminActor(), models.RegisterUserData{Username: "alice", Password: "other123"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(ctx, &models.User{ID: "2", Role: models.RoleUser}, models.RegisterUserData{Username: "bob", Password: "secret123"})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.Register(ctx, adminActor(), models.RegisterUserData{Username: "carol", Password: "secret123", Role: "root"})
	assert.ErrorIs(t, err, ErrValidation)

	result, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, result.User.ID)
}

func TestUserServiceDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(t)

	assert.ErrorIs(t, svc.Delete(ctx, adminActor(), "1"), ErrCannotDeleteSelf)
	assert.ErrorIs(t, svc.Delete(ctx, &models.User{ID: "2", Role: models.RoleUser}, "1"), ErrPermissionDenied)
	assert.ErrorIs(t, svc.Delete(ctx, adminActor(), "404"), ErrUserNotFound)

	login, err := svc.Login(ctx, "user", "user123")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, adminActor(), "2"))
	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	// 被删除用户的令牌随之失效
	_, _, err = svc.Authenticate(ctx, login.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestJWTServiceRejectsForeignSignature(t *testing.T) {
	cfg := testConfig()
	token, _, err := NewJWTService(cfg).GenerateToken(&models.User{ID: "1", Username: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecretKey = "other-secret"
	_, err = NewJWTService(other).ExtractClaims(token)
	assert.Error(t, err)

	claims, err := NewJWTService(cfg).ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.NotEmpty(t, claims.ID)
}
