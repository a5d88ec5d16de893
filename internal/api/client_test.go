package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flicky/flowerstore-client/internal/event"
	"github.com/flicky/flowerstore-client/internal/mockapi"
	"github.com/flicky/flowerstore-client/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSession(t *testing.T) *session.Store {
	t.Helper()
	s, err := session.Open(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return s
}

// newStubClient wires a Client against an arbitrary handler.
func newStubClient(t *testing.T, handler http.Handler) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := newSession(t)
	return New(srv.URL, 5*time.Second, sess, testLogger()), sess
}

// testEnv runs the full client stack against the in-memory mock backend.
type testEnv struct {
	api  *Client
	sess *session.Store
	bus  *event.Bus
}

func newMockEnv(t *testing.T) *testEnv {
	t.Helper()
	srv := httptest.NewServer(mockapi.New("test-secret").Handler())
	t.Cleanup(srv.Close)
	sess := newSession(t)
	return &testEnv{
		api:  New(srv.URL+"/api/v1", 5*time.Second, sess, testLogger()),
		sess: sess,
		bus:  event.NewBus(),
	}
}

// signIn registers a fresh account and returns its user id.
func (e *testEnv) signIn(t *testing.T, email string) int64 {
	t.Helper()
	auth := NewAuthClient(e.api, e.bus)
	resp, err := auth.Register(context.Background(), "Test", "User", "0900000000", email, "password123")
	require.NoError(t, err)
	require.NotEmpty(t, e.sess.Token())
	return resp.User.UserID
}

func TestClient_SetsJSONHeaders(t *testing.T) {
	var got http.Header
	client, _ := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":[]}`))
	}))

	_, err := NewCategoriesClient(client).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var got http.Header
	client, sess := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"data":[]}`))
	}))
	require.NoError(t, sess.SetToken("tok-123"))

	_, err := NewAddressesClient(client).List(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got.Get("Authorization"))
}

func TestClient_ProceedsWithoutTokenOnReads(t *testing.T) {
	// an authenticated read with no token still goes out; the server decides
	var got http.Header
	client, _ := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"unauthorized"}`))
	}))

	_, err := NewAddressesClient(client).List(context.Background(), 7)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Empty(t, got.Get("Authorization"))
}

func TestClient_NormalizesServerRejection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/categories", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"error": "teapot"})
	})
	client, _ := newStubClient(t, r)

	_, err := NewCategoriesClient(client).List(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTeapot, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "teapot")
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	sess := newSession(t)
	client := New(srv.URL, time.Second, sess, testLogger())

	_, err := NewCategoriesClient(client).List(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure must not look like a server rejection")
}
