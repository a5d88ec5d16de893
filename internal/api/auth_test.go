package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/flowerstore-client/internal/event"
)

func TestAuthClient_RegisterStoresSession(t *testing.T) {
	env := newMockEnv(t)
	auth := NewAuthClient(env.api, env.bus)

	resp, err := auth.Register(context.Background(), "Jane", "Doe", "0911111111", "jane@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, resp.Token, env.sess.Token())

	user := env.sess.User()
	require.NotNil(t, user)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, resp.User.UserID, user.UserID)
}

func TestAuthClient_LoginRoundTrip(t *testing.T) {
	env := newMockEnv(t)
	auth := NewAuthClient(env.api, env.bus)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Jane", "Doe", "0911111111", "login@example.com", "password123")
	require.NoError(t, err)
	auth.Logout()
	require.Empty(t, env.sess.Token())

	resp, err := auth.Login(ctx, "login@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, resp.Token, env.sess.Token())
	assert.True(t, env.sess.TokenExpiry().After(time.Now()))
}

func TestAuthClient_LoginBadCredentials(t *testing.T) {
	env := newMockEnv(t)
	auth := NewAuthClient(env.api, env.bus)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Jane", "Doe", "0911111111", "bad-creds@example.com", "password123")
	require.NoError(t, err)
	auth.Logout()

	_, err = auth.Login(ctx, "bad-creds@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Empty(t, env.sess.Token(), "failed login must not leave a token behind")
}

func TestAuthClient_LogoutIsLocalOnly(t *testing.T) {
	// the "backend" being unreachable must not matter
	sess := newSession(t)
	client := New("http://127.0.0.1:1", time.Second, sess, testLogger())
	require.NoError(t, sess.SetToken("tok"))

	bus := event.NewBus()
	changed := 0
	bus.Subscribe(event.SessionChanged, func() { changed++ })

	NewAuthClient(client, bus).Logout()
	assert.Empty(t, sess.Token())
	assert.Nil(t, sess.User())
	assert.Equal(t, 1, changed)
}

func TestAuthClient_LoginPublishesSessionChanged(t *testing.T) {
	env := newMockEnv(t)
	auth := NewAuthClient(env.api, env.bus)

	changed := 0
	env.bus.Subscribe(event.SessionChanged, func() { changed++ })

	_, err := auth.Register(context.Background(), "Jane", "Doe", "0911111111", "events@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, 1, changed)
}
