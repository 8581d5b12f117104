// Package session holds the server-side half of the session provider: the
// Redis-backed session records and the process-wide observable state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mubarakmsm/myweb/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error)
	Update(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	UpdateLastUsed(ctx context.Context, sessionID uuid.UUID) error

	StoreOAuthState(ctx context.Context, state string, expiration time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)
}

type repository struct {
	client *redis.Client
}

func NewRepository(client *redis.Client) Repository {
	return &repository{client: client}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("session:%s", id)
}

func userSessionsKey(userID uuid.UUID) string {
	return fmt.Sprintf("user_sessions:%s", userID)
}

func oauthStateKey(state string) string {
	return fmt.Sprintf("oauth_state:%s", state)
}

func (r *repository) Create(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKey(session.ID), data, time.Until(session.ExpiresAt))
	pipe.SAdd(ctx, userSessionsKey(session.UserID), session.ID.String())
	pipe.Expire(ctx, userSessionsKey(session.UserID), time.Until(session.ExpiresAt))

	_, err = pipe.Exec(ctx)
	return err
}

func (r *repository) GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Session, error) {
	ids, err := r.client.SMembers(ctx, userSessionsKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	var sessions []*domain.Session
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		session, err := r.GetByID(ctx, id)
		if err != nil || session == nil {
			continue // expired entries linger in the set until cleanup
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (r *repository) Update(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.ID), data, time.Until(session.ExpiresAt)).Err()
}

func (r *repository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	session, err := r.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	if session != nil {
		pipe.SRem(ctx, userSessionsKey(session.UserID), sessionID.String())
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (r *repository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	sessions, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	for _, session := range sessions {
		pipe.Del(ctx, sessionKey(session.ID))
	}
	pipe.Del(ctx, userSessionsKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}

func (r *repository) UpdateLastUsed(ctx context.Context, sessionID uuid.UUID) error {
	session, err := r.GetByID(ctx, sessionID)
	if err != nil || session == nil {
		return err
	}
	session.LastUsedAt = time.Now()
	return r.Update(ctx, session)
}

func (r *repository) StoreOAuthState(ctx context.Context, state string, expiration time.Duration) error {
	return r.client.Set(ctx, oauthStateKey(state), "1", expiration).Err()
}

// ConsumeOAuthState checks and deletes a stored state value in one step so
// a callback state can only be redeemed once.
func (r *repository) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	deleted, err := r.client.Del(ctx, oauthStateKey(state)).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
