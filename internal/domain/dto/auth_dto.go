package dto

import (
	"time"

	"github.com/mubarakmsm/myweb/internal/domain"
)

// LoginRequest carries the email/password sign-in form. The binding tags
// reject a missing or malformed email before any store call is issued.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest additionally requires the confirmation field to match the
// password, again before any network call.
type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// UserResponse is the settings-view shape: identity plus the read-only
// last-sign-in timestamp.
type UserResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

func UserResponseFrom(session *domain.Session) *UserResponse {
	return &UserResponse{
		ID:           session.UserID.String(),
		Email:        session.Email,
		LastSignInAt: session.LastSignInAt,
	}
}
