package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/flowerstore-client/internal/model"
)

func tempStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	s, err := Open(path)
	require.NoError(t, err)
	return s, path
}

func TestStore_TokenRoundTrip(t *testing.T) {
	s, _ := tempStore(t)

	require.NoError(t, s.SetToken("abc123"))
	assert.Equal(t, "abc123", s.Token())

	require.NoError(t, s.SetToken(""))
	assert.Equal(t, "", s.Token())
}

func TestStore_EmptyOnFirstOpen(t *testing.T) {
	s, _ := tempStore(t)
	assert.Equal(t, "", s.Token())
	assert.Nil(t, s.User())
}

func TestStore_UserSurvivesReopen(t *testing.T) {
	s, path := tempStore(t)
	user := &model.UserProfile{
		UserID: 7, FirstName: "John", LastName: "Doe",
		MobileNumber: "0900000000", Email: "john@example.com",
	}
	require.NoError(t, s.SetUser(user))
	require.NoError(t, s.SetToken("tok"))

	// simulate a process restart
	reopened, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "tok", reopened.Token())
	assert.Equal(t, user, reopened.User())
}

func TestStore_Clear(t *testing.T) {
	s, _ := tempStore(t)
	require.NoError(t, s.SetToken("tok"))
	require.NoError(t, s.SetUser(&model.UserProfile{UserID: 7}))

	s.Clear()
	assert.Equal(t, "", s.Token())
	assert.Nil(t, s.User())
}

func TestStore_UserCopyIsolation(t *testing.T) {
	s, _ := tempStore(t)
	user := &model.UserProfile{UserID: 7, FirstName: "John"}
	require.NoError(t, s.SetUser(user))

	user.FirstName = "mutated"
	assert.Equal(t, "John", s.User().FirstName)

	got := s.User()
	got.FirstName = "also mutated"
	assert.Equal(t, "John", s.User().FirstName)
}

func TestStore_TokenExpiry(t *testing.T) {
	s, _ := tempStore(t)
	assert.True(t, s.TokenExpiry().IsZero())

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "7",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	require.NoError(t, s.SetToken(signed))
	assert.WithinDuration(t, exp, s.TokenExpiry(), time.Second)
}
