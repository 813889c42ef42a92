package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

const testSecret = "test-signing-secret"

func newTestService(t *testing.T) (Service, *FakeRepository, *TokenManager) {
	t.Helper()
	repo := NewFakeRepository()
	tokens := NewTokenManager(testSecret, time.Hour)
	return NewService(repo, tokens), repo, tokens
}

func TestRegister(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "ragnar", "ragnar@example.com", "sekrit-pass")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, domain.RolePlayer, user.Role, "new accounts always start as players")
	assert.NotEqual(t, "sekrit-pass", user.PasswordHash, "password must never be stored in the clear")
}

func TestRegisterResolvesPlayerRoleByName(t *testing.T) {
	svc, repo, _ := newTestService(t)
	ctx := context.Background()

	// The role ID comes from the store, not from an assumed seed order
	repo.SeedRole(domain.RoleNamePlayer, 7)

	user, err := svc.Register(ctx, "ragnar", "ragnar@example.com", "sekrit-pass")
	require.NoError(t, err)
	assert.Equal(t, 7, user.RoleID)
	assert.Equal(t, domain.RolePlayer, user.Role)
}

func TestRegisterConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ragnar", "ragnar@example.com", "sekrit-pass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ragnar", "other@example.com", "sekrit-pass")
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	_, err = svc.Register(ctx, "lagertha", "ragnar@example.com", "sekrit-pass")
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc, _, tokens := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "ragnar", "ragnar@example.com", "sekrit-pass")
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "ragnar", "sekrit-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	require.NotEmpty(t, token)

	actor, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, actor.UserID)
	assert.Equal(t, "ragnar", actor.Username)
	assert.Equal(t, domain.RolePlayer, actor.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ragnar", "ragnar@example.com", "sekrit-pass")
	require.NoError(t, err)

	// Unknown username and wrong password are indistinguishable to callers
	_, _, err = svc.Login(ctx, "nobody", "sekrit-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ragnar", "wrong-pass")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	tokens := NewTokenManager(testSecret, time.Hour)
	user := &domain.User{ID: 1, Username: "ragnar", Role: domain.RolePlayer}

	token, err := tokens.Issue(user)
	require.NoError(t, err)

	_, err = tokens.Verify(token + "x")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	otherKey := NewTokenManager("different-secret", time.Hour)
	_, err = otherKey.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tokens := NewTokenManager(testSecret, time.Hour)
	user := &domain.User{ID: 1, Username: "ragnar", Role: domain.RolePlayer}

	issued := time.Now()
	tokens.now = func() time.Time { return issued }
	token, err := tokens.Issue(user)
	require.NoError(t, err)

	tokens.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = tokens.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerifyUnknownRoleFailsClosed(t *testing.T) {
	tokens := NewTokenManager(testSecret, time.Hour)
	user := &domain.User{ID: 1, Username: "ragnar", Role: domain.Role(99)}

	token, err := tokens.Issue(user)
	require.NoError(t, err)

	actor, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUnknown, actor.Role)
	assert.False(t, actor.IsAdmin())
}
