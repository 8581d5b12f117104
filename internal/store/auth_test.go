package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T, handler http.HandlerFunc) *Auth {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(server.URL, "anon-key")
	require.NoError(t, err)
	return NewAuth(client, "http://localhost:8080/auth/google/callback")
}

func TestAuth_SignInWithPassword(t *testing.T) {
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.com", creds["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at",
			"refresh_token": "rt",
			"token_type":    "bearer",
			"expires_in":    3600,
			"user": map[string]any{
				"id":    "7b6d2b8e-12aa-4f0e-9124-7f3f6f4b8c11",
				"email": "a@b.com",
			},
		})
	})

	session, err := auth.SignInWithPassword(context.Background(), "a@b.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "at", session.AccessToken)
	assert.Equal(t, "rt", session.RefreshToken)
	assert.Equal(t, "a@b.com", session.User.Email)
}

func TestAuth_SignIn_BadCredentials(t *testing.T) {
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"msg": "Invalid login credentials"})
	})

	_, err := auth.SignInWithPassword(context.Background(), "a@b.com", "wrongpass")
	require.Error(t, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusBadRequest, authErr.StatusCode)
	assert.Equal(t, "Invalid login credentials", authErr.Reason())
}

func TestAuth_RefreshSession(t *testing.T) {
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		// The refresh grant authenticates with the refresh token body alone.
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "old-rt", body["refresh_token"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "new-at",
			"refresh_token": "new-rt",
			"expires_in":    3600,
		})
	})

	session, err := auth.RefreshSession(context.Background(), "old-rt")
	require.NoError(t, err)
	assert.Equal(t, "new-at", session.AccessToken)
	assert.Equal(t, "new-rt", session.RefreshToken)
}

func TestAuth_SignUp(t *testing.T) {
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"access_token": "at", "refresh_token": "rt"})
	})

	session, err := auth.SignUp(context.Background(), "new@b.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "at", session.AccessToken)
}

func TestAuth_GoogleAuthURL(t *testing.T) {
	client, err := New("https://example.supabase.co", "anon-key")
	require.NoError(t, err)
	auth := NewAuth(client, "http://localhost:8080/auth/google/callback")

	rawURL := auth.GoogleAuthURL("state-token")
	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)

	assert.Equal(t, "/auth/v1/authorize", parsed.Path)
	assert.Equal(t, "google", parsed.Query().Get("provider"))
	assert.Equal(t, "state-token", parsed.Query().Get("state"))
	assert.Equal(t, "http://localhost:8080/auth/google/callback", parsed.Query().Get("redirect_uri"))
}

func TestAuth_SignOut(t *testing.T) {
	var revokedWith string
	auth := newTestAuth(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/logout", r.URL.Path)
		revokedWith = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, auth.SignOut(context.Background(), "user-access-token"))
	assert.Equal(t, "Bearer user-access-token", revokedWith)
}

func TestAuthError_Reason(t *testing.T) {
	withMsg := &AuthError{Message: "User already registered"}
	assert.Equal(t, "User already registered", withMsg.Reason())

	withDesc := &AuthError{ErrorDesc: "invalid grant"}
	assert.Equal(t, "invalid grant", withDesc.Reason())
}
