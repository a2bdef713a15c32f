package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	id := Identity{Team: "sharks", League: "office-league", IsAdmin: true}

	token, err := NewToken(secret, id)
	require.NoError(t, err)

	got, err := Parse(secret, token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := NewToken(secret, Identity{Team: "sharks", League: "office-league"})
	require.NoError(t, err)

	_, err = Parse([]byte("other-secret"), token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	_, err := Parse(secret, "not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	var seen Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := FromContext(r.Context())
		require.True(t, ok)
		seen = id
	})
	handler := Middleware(secret)(next)

	t.Run("valid token passes identity through", func(t *testing.T) {
		token, err := NewToken(secret, Identity{Team: "sharks", League: "office-league"})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/draft/state", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "sharks", seen.Team)
		assert.Equal(t, "office-league", seen.League)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/draft/state", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bad token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/draft/state", nil)
		req.Header.Set("Authorization", "Bearer junk")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
