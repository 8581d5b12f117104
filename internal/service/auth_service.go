package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mubarakmsm/myweb/internal/config"
	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/session"
	"github.com/mubarakmsm/myweb/internal/store"
)

const (
	SessionTokenType   = "session"
	OAuthStateDuration = 10 * time.Minute

	// The store issues short-lived access tokens; refresh slightly ahead of
	// the deadline so an in-flight write never carries a dead token.
	defaultAccessTokenTTL = time.Hour
	refreshSkew           = 30 * time.Second
)

// Claims is the payload of the signed session token handed to the browser.
// The token only names a Redis session; the store tokens never leave the
// server.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	SessionID uuid.UUID `json:"session_id"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

type AuthService interface {
	SignIn(ctx context.Context, email, password, userAgent, ipAddress string) (string, *domain.Session, error)
	SignUp(ctx context.Context, email, password, userAgent, ipAddress string) (string, *domain.Session, error)
	SignInWithGoogle(ctx context.Context) (string, error)
	CompleteGoogleSignIn(ctx context.Context, code, state, userAgent, ipAddress string) (string, *domain.Session, error)
	SignOut(ctx context.Context, sessionID uuid.UUID) error

	// RefreshIfStale renews the session's store access token when it is at
	// or past its deadline, persisting the rotated tokens. Sessions outlive
	// access tokens by weeks; this runs on every guarded request.
	RefreshIfStale(ctx context.Context, sess *domain.Session) (*domain.Session, error)

	SessionByID(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	UserSessions(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error)
	RevokeSession(ctx context.Context, sessionID uuid.UUID) error
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) error
}

type authService struct {
	cfg         *config.Config
	auth        *store.Auth
	sessionRepo session.Repository
	provider    *session.Provider
	jwtSecret   string
	sessionTTL  time.Duration
}

func NewAuthService(cfg *config.Config, auth *store.Auth, sessionRepo session.Repository, provider *session.Provider) AuthService {
	return &authService{
		cfg:         cfg,
		auth:        auth,
		sessionRepo: sessionRepo,
		provider:    provider,
		jwtSecret:   cfg.JWTSecret,
		sessionTTL:  cfg.SessionTTL,
	}
}

func (s *authService) SignIn(ctx context.Context, email, password, userAgent, ipAddress string) (string, *domain.Session, error) {
	authSession, err := s.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	return s.establishSession(ctx, authSession, userAgent, ipAddress)
}

func (s *authService) SignUp(ctx context.Context, email, password, userAgent, ipAddress string) (string, *domain.Session, error) {
	authSession, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		return "", nil, err
	}
	return s.establishSession(ctx, authSession, userAgent, ipAddress)
}

// SignInWithGoogle starts the redirect-based flow: the caller sends the
// browser to the returned URL and the provider resolves out of process via
// the callback route.
func (s *authService) SignInWithGoogle(ctx context.Context) (string, error) {
	state := uuid.New().String()
	if err := s.sessionRepo.StoreOAuthState(ctx, state, OAuthStateDuration); err != nil {
		return "", fmt.Errorf("storing oauth state: %w", err)
	}
	return s.auth.GoogleAuthURL(state), nil
}

func (s *authService) CompleteGoogleSignIn(ctx context.Context, code, state, userAgent, ipAddress string) (string, *domain.Session, error) {
	ok, err := s.sessionRepo.ConsumeOAuthState(ctx, state)
	if err != nil {
		return "", nil, fmt.Errorf("checking oauth state: %w", err)
	}
	if !ok {
		return "", nil, fmt.Errorf("invalid or expired oauth state")
	}

	authSession, err := s.auth.ExchangeCode(ctx, code)
	if err != nil {
		return "", nil, err
	}
	return s.establishSession(ctx, authSession, userAgent, ipAddress)
}

func (s *authService) establishSession(ctx context.Context, authSession *domain.AuthSession, userAgent, ipAddress string) (string, *domain.Session, error) {
	now := time.Now()
	sess := &domain.Session{
		ID:                   uuid.New(),
		UserID:               authSession.User.ID,
		Email:                authSession.User.Email,
		AccessToken:          authSession.AccessToken,
		RefreshToken:         authSession.RefreshToken,
		AccessTokenExpiresAt: now.Add(accessTokenTTL(authSession)),
		ExpiresAt:            now.Add(s.sessionTTL),
		CreatedAt:            now,
		LastUsedAt:           now,
		LastSignInAt:         authSession.User.LastSignInAt,
		UserAgent:            userAgent,
		IPAddress:            ipAddress,
	}
	if sess.LastSignInAt == nil {
		sess.LastSignInAt = &now
	}

	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return "", nil, fmt.Errorf("persisting session: %w", err)
	}

	token, err := s.signSessionToken(sess)
	if err != nil {
		return "", nil, err
	}

	s.provider.SetAuthenticated(sess)
	log.Info().Str("user_id", sess.UserID.String()).Str("session_id", sess.ID.String()).Msg("session established")

	return token, sess, nil
}

func (s *authService) signSessionToken(sess *domain.Session) (string, error) {
	claims := &Claims{
		UserID:    sess.UserID,
		SessionID: sess.ID,
		TokenType: SessionTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func accessTokenTTL(authSession *domain.AuthSession) time.Duration {
	if authSession.ExpiresIn > 0 {
		return time.Duration(authSession.ExpiresIn) * time.Second
	}
	return defaultAccessTokenTTL
}

// RefreshIfStale returns the session unchanged while its access token is
// still live; otherwise it redeems the stored refresh token and persists
// the rotated pair.
func (s *authService) RefreshIfStale(ctx context.Context, sess *domain.Session) (*domain.Session, error) {
	if time.Now().Add(refreshSkew).Before(sess.AccessTokenExpiresAt) {
		return sess, nil
	}

	authSession, err := s.auth.RefreshSession(ctx, sess.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("refreshing access token: %w", err)
	}

	sess.AccessToken = authSession.AccessToken
	if authSession.RefreshToken != "" {
		sess.RefreshToken = authSession.RefreshToken
	}
	sess.AccessTokenExpiresAt = time.Now().Add(accessTokenTTL(authSession))

	if err := s.sessionRepo.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("persisting refreshed session: %w", err)
	}

	log.Debug().Str("session_id", sess.ID.String()).Msg("access token refreshed")
	return sess, nil
}

func (s *authService) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	sess, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if sess != nil {
		if err := s.auth.SignOut(ctx, sess.AccessToken); err != nil {
			// The backend may have expired the token already; the local
			// session is removed regardless.
			log.Warn().Err(err).Str("session_id", sessionID.String()).Msg("backend sign-out failed")
		}
	}

	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.provider.SetAnonymous()
	return nil
}

func (s *authService) SessionByID(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	return s.sessionRepo.GetByID(ctx, sessionID)
}

func (s *authService) UserSessions(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	return s.sessionRepo.GetByUserID(ctx, userID)
}

func (s *authService) RevokeSession(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessionRepo.Delete(ctx, sessionID)
}

func (s *authService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) error {
	return s.sessionRepo.DeleteByUserID(ctx, userID)
}
