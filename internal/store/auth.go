package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/mubarakmsm/myweb/internal/domain"
)

const authPath = "/auth/v1"

// AuthError is the decoded payload of a failed auth call. The store reports
// the human-readable reason (wrong password, email taken) in Message.
type AuthError struct {
	StatusCode int    `json:"code"`
	Message    string `json:"msg"`
	ErrorDesc  string `json:"error_description"`
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return "store auth: " + e.Message
	}
	if e.ErrorDesc != "" {
		return "store auth: " + e.ErrorDesc
	}
	return fmt.Sprintf("store auth: request failed (status %d)", e.StatusCode)
}

// Reason returns the failure reason reported by the backend, for surfacing
// on the sign-in/sign-up forms.
func (e *AuthError) Reason() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrorDesc
}

// Auth is the client for the record store's authentication sub-service.
type Auth struct {
	client *Client
	oauth  *oauth2.Config
}

// NewAuth wraps the store handle's auth endpoints. redirectURL is where the
// external OAuth flow lands back after the out-of-process redirect dance.
func NewAuth(client *Client, redirectURL string) *Auth {
	return &Auth{
		client: client,
		oauth: &oauth2.Config{
			ClientID:    client.apiKey,
			RedirectURL: redirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:  client.baseURL + authPath + "/authorize",
				TokenURL: client.baseURL + authPath + "/token",
			},
		},
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp registers a new email/password identity and returns its session.
func (a *Auth) SignUp(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	return a.postSession(ctx, "/signup", credentials{Email: email, Password: password})
}

// SignInWithPassword exchanges email/password for a session via the
// password grant.
func (a *Auth) SignInWithPassword(ctx context.Context, email, password string) (*domain.AuthSession, error) {
	return a.postSession(ctx, "/token?grant_type=password", credentials{Email: email, Password: password})
}

// RefreshSession trades a refresh token for a fresh session.
func (a *Auth) RefreshSession(ctx context.Context, refreshToken string) (*domain.AuthSession, error) {
	body := map[string]string{"refresh_token": refreshToken}
	return a.postSession(ctx, "/token?grant_type=refresh_token", body)
}

// SignOut revokes the given access token on the backend.
func (a *Auth) SignOut(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.client.baseURL+authPath+"/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("apikey", a.client.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("store auth: logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAuthError(resp)
	}
	return nil
}

// GoogleAuthURL builds the external authorize URL. The actual token
// exchange happens when the provider redirects back to the callback route.
func (a *Auth) GoogleAuthURL(state string) string {
	return a.oauth.AuthCodeURL(state, oauth2.SetAuthURLParam("provider", "google"))
}

// ExchangeCode completes the OAuth flow, trading the callback code for a
// store session.
func (a *Auth) ExchangeCode(ctx context.Context, code string) (*domain.AuthSession, error) {
	token, err := a.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("store auth: code exchange: %w", err)
	}

	session := &domain.AuthSession{
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
	}

	// The authenticated user rides along on the token response.
	if raw := token.Extra("user"); raw != nil {
		encoded, err := json.Marshal(raw)
		if err == nil {
			_ = json.Unmarshal(encoded, &session.User)
		}
	}
	if session.User.ID == uuid.Nil {
		user, err := a.GetUser(ctx, session.AccessToken)
		if err != nil {
			return nil, err
		}
		session.User = *user
	}

	return session, nil
}

// GetUser fetches the identity behind an access token.
func (a *Auth) GetUser(ctx context.Context, accessToken string) (*domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.client.baseURL+authPath+"/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", a.client.apiKey)
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := a.client.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store auth: get user: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, decodeAuthError(resp)
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("store auth: decoding user: %w", err)
	}
	return &user, nil
}

func (a *Auth) postSession(ctx context.Context, endpoint string, body any) (*domain.AuthSession, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.client.baseURL+authPath+endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", a.client.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("store auth: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, decodeAuthError(resp)
	}

	var session domain.AuthSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("store auth: decoding session: %w", err)
	}
	return &session, nil
}

func decodeAuthError(resp *http.Response) error {
	authErr := &AuthError{StatusCode: resp.StatusCode}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(body, authErr); err != nil {
		authErr.Message = http.StatusText(resp.StatusCode)
	}
	authErr.StatusCode = resp.StatusCode
	return authErr
}
