package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mubarakmsm/myweb/internal/domain"
)

func TestProvider_StartsAnonymous(t *testing.T) {
	provider := NewProvider()

	state, sess := provider.State()
	assert.Equal(t, Anonymous, state)
	assert.Nil(t, sess)
}

func TestProvider_SetAuthenticated(t *testing.T) {
	provider := NewProvider()
	sess := &domain.Session{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	provider.SetAuthenticated(sess)

	state, current := provider.State()
	assert.Equal(t, Authenticated, state)
	require.NotNil(t, current)
	assert.Equal(t, sess.ID, current.ID)
}

func TestProvider_SetAnonymousClearsSession(t *testing.T) {
	provider := NewProvider()
	provider.SetAuthenticated(&domain.Session{ID: uuid.New()})

	provider.SetAnonymous()

	state, sess := provider.State()
	assert.Equal(t, Anonymous, state)
	assert.Nil(t, sess)
}

func TestProvider_ObserversSeeEveryTransition(t *testing.T) {
	provider := NewProvider()

	type change struct {
		state   State
		session *domain.Session
	}
	var seen []change
	provider.Subscribe(func(state State, session *domain.Session) {
		seen = append(seen, change{state, session})
	})

	sess := &domain.Session{ID: uuid.New()}
	provider.SetAuthenticated(sess)
	provider.SetAnonymous()

	require.Len(t, seen, 2)
	assert.Equal(t, Authenticated, seen[0].state)
	assert.Equal(t, sess.ID, seen[0].session.ID)
	assert.Equal(t, Anonymous, seen[1].state)
	assert.Nil(t, seen[1].session)
}

func TestProvider_MultipleObservers(t *testing.T) {
	provider := NewProvider()

	first, second := 0, 0
	provider.Subscribe(func(State, *domain.Session) { first++ })
	provider.Subscribe(func(State, *domain.Session) { second++ })

	provider.SetAuthenticated(&domain.Session{ID: uuid.New()})

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "anonymous", Anonymous.String())
	assert.Equal(t, "authenticated", Authenticated.String())
}
