package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nimbus/internal/domain"
	"nimbus/internal/testutil"
)

type staticResolver struct {
	token   string
	session *domain.Session
}

func (r *staticResolver) Resolve(_ context.Context, token string) (*domain.Session, error) {
	if token == r.token {
		return r.session, nil
	}
	return nil, ErrUnauthenticated
}

func TestMiddleware_InjectsSession(t *testing.T) {
	session := testutil.NewTestSession("alice@example.com")
	resolver := &staticResolver{token: "good-token", session: session}

	var seen *domain.Session
	handler := Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice@example.com", seen.UserEmail)
}

func TestMiddleware_RejectsMissingToken(t *testing.T) {
	resolver := &staticResolver{token: "good-token", session: testutil.NewTestSession("alice@example.com")}

	called := false
	handler := Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, rec.Body.String())
	assert.False(t, called)
}

type failingResolver struct {
	err error
}

func (r *failingResolver) Resolve(_ context.Context, _ string) (*domain.Session, error) {
	return nil, r.err
}

func TestMiddleware_StoreFailureIsNot401(t *testing.T) {
	resolver := &failingResolver{err: errors.New("resolving session: database is locked")}

	called := false
	handler := Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
	assert.False(t, called)
}

func TestMiddleware_RejectsInvalidToken(t *testing.T) {
	resolver := &staticResolver{token: "good-token", session: testutil.NewTestSession("alice@example.com")}

	handler := Middleware(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTokenFromRequest(t *testing.T) {
	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer abc123")
		assert.Equal(t, "abc123", TokenFromRequest(req))
	})

	t.Run("cookie fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
		assert.Equal(t, "cookie-token", TokenFromRequest(req))
	})

	t.Run("header wins over cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header-token")
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
		assert.Equal(t, "header-token", TokenFromRequest(req))
	})

	t.Run("non-bearer header ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		assert.Equal(t, "", TokenFromRequest(req))
	})

	t.Run("nothing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Equal(t, "", TokenFromRequest(req))
	})
}
