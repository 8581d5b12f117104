package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mubarakmsm/myweb/internal/config"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/middleware"
	"github.com/mubarakmsm/myweb/internal/service"
	"github.com/mubarakmsm/myweb/internal/store"
)

type AuthHandler struct {
	authService service.AuthService
	config      *config.Config
}

func NewAuthHandler(authService service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		config:      cfg,
	}
}

// Login handles the email/password sign-in form. Binding validation (email
// format, minimum password length) runs before any store call.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   msgLoginFailed,
			"details": err.Error(),
		})
		return
	}

	token, sess, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password, c.GetHeader("User-Agent"), c.ClientIP())
	if err != nil {
		h.failAuth(c, err, msgLoginFailed)
		return
	}

	h.setSessionCookie(c, token, sess.ExpiresAt)
	c.JSON(http.StatusOK, gin.H{"user": dto.UserResponseFrom(sess)})
}

// Register handles the sign-up form. A mismatched password confirmation is
// rejected by the eqfield binding before any network call.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   msgRegisterFailed,
			"details": err.Error(),
		})
		return
	}

	token, sess, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password, c.GetHeader("User-Agent"), c.ClientIP())
	if err != nil {
		h.failAuth(c, err, msgRegisterFailed)
		return
	}

	h.setSessionCookie(c, token, sess.ExpiresAt)
	c.JSON(http.StatusCreated, gin.H{"user": dto.UserResponseFrom(sess)})
}

// GoogleAuth starts the redirect-based OAuth flow; the browser is sent to
// the returned URL and resolution happens out of process.
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	authURL, err := h.authService.SignInWithGoogle(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("auth: initiating google sign-in")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoginFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth_url": authURL})
}

// GoogleCallback lands the external flow: the state is redeemed, the code
// exchanged, and the browser redirected to the dashboard with a session.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")

	token, sess, err := h.authService.CompleteGoogleSignIn(c.Request.Context(), code, state, c.GetHeader("User-Agent"), c.ClientIP())
	if err != nil {
		log.Error().Err(err).Msg("auth: google callback failed")
		c.Redirect(http.StatusTemporaryRedirect, middleware.LoginRoute+"?error=auth_failed")
		return
	}

	h.setSessionCookie(c, token, sess.ExpiresAt)
	c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, exists := c.Get("session_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
		return
	}

	if err := h.authService.SignOut(c.Request.Context(), sessionID.(uuid.UUID)); err != nil {
		log.Error().Err(err).Msg("auth: sign-out failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoginFailed})
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.config.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "تم تسجيل الخروج بنجاح"})
}

// Me serves the settings view: identity plus the read-only last-sign-in
// timestamp.
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID := c.MustGet("session_id").(uuid.UUID)

	sess, err := h.authService.SessionByID(c.Request.Context(), sessionID)
	if err != nil || sess == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.UserResponseFrom(sess)})
}

// Sessions lists the user's active sessions.
func (h *AuthHandler) Sessions(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	sessions, err := h.authService.UserSessions(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions, "total": len(sessions)})
}

// RevokeSession kills one session by id.
func (h *AuthHandler) RevokeSession(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return
	}

	if err := h.authService.RevokeSession(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgDeleteFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "تم إنهاء الجلسة"})
}

// failAuth surfaces the backend's failure reason on the form when the
// store reported one, and the generic message otherwise.
func (h *AuthHandler) failAuth(c *gin.Context, err error, fallback string) {
	var authErr *store.AuthError
	if errors.As(err, &authErr) && authErr.StatusCode < 500 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":  fallback,
			"reason": authErr.Reason(),
		})
		return
	}

	log.Error().Err(err).Msg("auth: backend failure")
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", h.config.CookieSecure, true)
}
