package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/boutique-shop/internal/session"
	"github.com/example/boutique-shop/internal/whatsapp"
)

func newTestManager() *session.Manager {
	tokens := session.NewTokenService("test-secret-key-for-testing-purposes", time.Hour)
	return session.NewManager(tokens, testNumber, whatsapp.LogNavigator{})
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(r *http.Request)
		expected string
	}{
		{
			name:     "no token",
			setup:    func(r *http.Request) {},
			expected: "",
		},
		{
			name: "cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
			},
			expected: "cookie-token",
		},
		{
			name: "bearer header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
			},
			expected: "header-token",
		},
		{
			name: "cookie wins over header",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			expected: "cookie-token",
		},
		{
			name: "malformed authorization header",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Basic abc123")
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/cart", nil)
			tt.setup(r)
			assert.Equal(t, tt.expected, extractToken(r))
		})
	}
}

func TestSessionMiddleware_IssuesSessionWhenMissing(t *testing.T) {
	manager := newTestManager()

	var seen *session.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := session.FromContext(r.Context())
		require.NoError(t, err)
		seen = sess
	})

	rec := httptest.NewRecorder()
	SessionMiddleware(manager)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))

	require.NotNil(t, seen)
	assert.Equal(t, 1, manager.Len())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSessionMiddleware_ReusesValidToken(t *testing.T) {
	manager := newTestManager()
	issued, token, err := manager.Issue()
	require.NoError(t, err)

	var seen *session.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = session.FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	SessionMiddleware(manager)(next).ServeHTTP(rec, req)

	assert.Same(t, issued, seen)
	// No replacement cookie for an already valid session.
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionMiddleware_ReplacesInvalidToken(t *testing.T) {
	manager := newTestManager()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := session.FromContext(r.Context())
		require.NoError(t, err)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "garbage"})
	rec := httptest.NewRecorder()
	SessionMiddleware(manager)(next).ServeHTTP(rec, req)

	require.Len(t, rec.Result().Cookies(), 1)
	assert.NotEqual(t, "garbage", rec.Result().Cookies()[0].Value)
}
