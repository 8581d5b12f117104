package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity the record store's auth service reports after a
// successful sign-in or sign-up.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	CreatedAt    time.Time  `json:"created_at"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

// AuthSession is the token bundle issued by the store's auth service.
type AuthSession struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Session is the server-side session record kept in Redis for each
// authenticated dashboard user. It carries the store-issued tokens so
// user-scoped writes can be authorized on the user's behalf.
type Session struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	// AccessTokenExpiresAt is when the store-issued access token dies; the
	// session itself outlives it by weeks and renews the token on use.
	AccessTokenExpiresAt time.Time  `json:"access_token_expires_at"`
	ExpiresAt            time.Time  `json:"expires_at"`
	CreatedAt            time.Time  `json:"created_at"`
	LastUsedAt           time.Time  `json:"last_used_at"`
	LastSignInAt         *time.Time `json:"last_sign_in_at,omitempty"`
	UserAgent            string     `json:"user_agent"`
	IPAddress            string     `json:"ip_address"`
}
