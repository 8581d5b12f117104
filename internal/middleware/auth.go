package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/service"
	"github.com/mubarakmsm/myweb/internal/session"
)

// SessionCookie carries the signed session token between requests.
const SessionCookie = "portfolio_session"

// LoginRoute is where the guard sends anonymous requests.
const LoginRoute = "/login"

// TokenRefresher renews the store access token a session is holding once
// the token reaches its deadline.
type TokenRefresher interface {
	RefreshIfStale(ctx context.Context, sess *domain.Session) (*domain.Session, error)
}

// RouteGuard protects the dashboard subtree: requests without a valid
// session are redirected to the login route before any dashboard handler
// runs. Valid requests get a live store access token refreshed if needed,
// plus user_id and session_id, set on the context.
func RouteGuard(jwtSecret string, sessions session.Repository, refresher TokenRefresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c)
		if tokenString == "" {
			redirectToLogin(c)
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (interface{}, error) {
			if method, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			} else if method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected HMAC algorithm: %v", method.Alg())
			}
			return []byte(jwtSecret), nil
		})
		if err != nil {
			redirectToLogin(c)
			return
		}

		claims, ok := token.Claims.(*service.Claims)
		if !ok || !token.Valid || validateClaims(claims) != nil {
			redirectToLogin(c)
			return
		}

		sess, err := sessions.GetByID(c.Request.Context(), claims.SessionID)
		if err != nil || sess == nil {
			redirectToLogin(c)
			return
		}
		if time.Now().After(sess.ExpiresAt) {
			redirectToLogin(c)
			return
		}

		// Sessions outlive the store's short-lived access token; renew it
		// here so user-scoped writes never carry a dead token.
		sess, err = refresher.RefreshIfStale(c.Request.Context(), sess)
		if err != nil {
			redirectToLogin(c)
			return
		}

		go sessions.UpdateLastUsed(context.Background(), sess.ID)

		c.Set("user_id", sess.UserID)
		c.Set("session_id", sess.ID)
		c.Set("access_token", sess.AccessToken)
		c.Next()
	}
}

func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}

	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func validateClaims(claims *service.Claims) error {
	now := time.Now()

	if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
		return errors.New("token has expired")
	}
	if claims.TokenType != service.SessionTokenType {
		return fmt.Errorf("invalid token type: %s", claims.TokenType)
	}
	if claims.UserID == uuid.Nil || claims.SessionID == uuid.Nil {
		return errors.New("invalid token identifiers")
	}
	return nil
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, LoginRoute)
	c.Abort()
}
