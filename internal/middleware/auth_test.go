package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GameCatalog_Go/internal/auth"
	"github.com/osse101/GameCatalog_Go/internal/domain"
)

func issueToken(t *testing.T, tokens *auth.TokenManager, role domain.Role) string {
	t.Helper()
	token, err := tokens.Issue(&domain.User{ID: 7, Username: "ragnar", Role: role})
	require.NoError(t, err)
	return token
}

func echoActor(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		require.True(t, ok, "handler must see the authenticated actor")
		assert.Equal(t, 7, actor.UserID)
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("middleware-test-secret", time.Hour)
	protected := Authenticate(tokens)(echoActor(t))

	t.Run("valid bearer token passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, domain.RolePlayer))
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgUnauthorized)
	})

	t.Run("non-bearer scheme rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		w := httptest.NewRecorder()

		protected.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenManager("middleware-test-secret", time.Hour)
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	gated := Authenticate(tokens)(RequireAdmin(ok))

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, domain.RoleAdmin))
		w := httptest.NewRecorder()

		gated.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("player forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, domain.RolePlayer))
		w := httptest.NewRecorder()

		gated.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgForbidden)
	})

	t.Run("unknown role fails closed", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, domain.Role(99)))
		w := httptest.NewRecorder()

		gated.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no actor unauthorized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()

		RequireAdmin(ok).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
