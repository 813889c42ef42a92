package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GameCatalog_Go/internal/auth"
)

func newAuthHandlers(t *testing.T) (auth.Service, *auth.TokenManager) {
	t.Helper()
	InitValidator()
	tokens := auth.NewTokenManager("handler-test-secret", time.Hour)
	return auth.NewService(auth.NewFakeRepository(), tokens), tokens
}

func postJSON(h http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleRegister(t *testing.T) {
	svc, _ := newAuthHandlers(t)
	h := HandleRegister(svc)

	t.Run("created", func(t *testing.T) {
		w := postJSON(h, "/auth/register", `{"username":"ragnar","email":"ragnar@example.com","password":"sekrit-pass"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.User)
		assert.NotZero(t, resp.User.ID)
		assert.NotContains(t, w.Body.String(), "sekrit-pass", "password must never appear in responses")
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		w := postJSON(h, "/auth/register", `{"username":"ragnar","email":"other@example.com","password":"sekrit-pass"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgUsernameTakenHTTP)
	})

	t.Run("short password fails validation", func(t *testing.T) {
		w := postJSON(h, "/auth/register", `{"username":"lagertha","email":"l@example.com","password":"short"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"password"`)
	})

	t.Run("bad email fails validation", func(t *testing.T) {
		w := postJSON(h, "/auth/register", `{"username":"lagertha","email":"not-an-email","password":"sekrit-pass"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"email"`)
	})
}

func TestHandleLogin(t *testing.T) {
	svc, tokens := newAuthHandlers(t)
	register := HandleRegister(svc)
	login := HandleLogin(svc)

	w := postJSON(register, "/auth/register", `{"username":"ragnar","email":"ragnar@example.com","password":"sekrit-pass"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("token issued", func(t *testing.T) {
		w := postJSON(login, "/auth/login", `{"username":"ragnar","password":"sekrit-pass"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp AuthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Token)

		actor, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "ragnar", actor.Username)
	})

	t.Run("wrong password unauthorized", func(t *testing.T) {
		w := postJSON(login, "/auth/login", `{"username":"ragnar","password":"wrong-pass"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidCredentialsHTTP)
	})

	t.Run("unknown user gets the same error", func(t *testing.T) {
		w := postJSON(login, "/auth/login", `{"username":"nobody","password":"sekrit-pass"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidCredentialsHTTP)
	})
}
