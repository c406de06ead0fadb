// Package session scopes cart, wishlist, and checkout state to a single
// visitor. It replaces ambient provider state with explicitly owned
// stores: every consumer receives the session, and using the stores
// without one is a precondition failure, not a silent default.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/example/boutique-shop/internal/cart"
	"github.com/example/boutique-shop/internal/checkout"
	"github.com/example/boutique-shop/internal/whatsapp"
	"github.com/example/boutique-shop/internal/wishlist"
)

var (
	ErrNoSession      = errors.New("no session in context")
	ErrUnknownSession = errors.New("unknown session")
)

// Session owns one visitor's ephemeral state. Nothing here survives the
// process; there is deliberately no persistence layer.
type Session struct {
	ID        string
	CreatedAt time.Time

	Cart     *cart.Store
	Wishlist *wishlist.Store
	Checkout *checkout.Flow
}

// Manager issues sessions and resolves tokens back to them. Sessions live
// in memory only; a restart forgets every cart, which is the intended
// lifetime for this storefront.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	tokens         *TokenService
	whatsappNumber string
	nav            whatsapp.Navigator
}

// NewManager wires a session manager. The WhatsApp number and navigator
// are handed to each session's checkout flow.
func NewManager(tokens *TokenService, whatsappNumber string, nav whatsapp.Navigator) *Manager {
	return &Manager{
		sessions:       make(map[string]*Session),
		tokens:         tokens,
		whatsappNumber: whatsappNumber,
		nav:            nav,
	}
}

// Issue creates a fresh session with empty stores and returns it together
// with its signed token.
func (m *Manager) Issue() (*Session, string, error) {
	c := cart.NewStore()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Cart:      c,
		Wishlist:  wishlist.NewStore(),
		Checkout:  checkout.NewFlow(c, m.whatsappNumber, m.nav),
	}

	token, _, err := m.tokens.Generate(sess.ID)
	if err != nil {
		return nil, "", errors.Wrap(err, "sign session token")
	}

	m.mu.Lock()
	m.evictExpired(time.Now())
	m.sessions[sess.ID] = sess
	m.mu.Unlock()

	return sess, token, nil
}

// evictExpired drops sessions whose tokens can no longer validate.
// Piggybacked on Issue so the map stays bounded by the live-session count
// without a background sweeper. Caller holds mu.
func (m *Manager) evictExpired(now time.Time) {
	for id, sess := range m.sessions {
		if now.Sub(sess.CreatedAt) > m.tokens.Expiry() {
			delete(m.sessions, id)
		}
	}
}

// Resolve validates a token and returns its live session. A valid token
// for a session this process no longer holds (e.g. after a restart)
// yields ErrUnknownSession; callers issue a fresh session in response.
func (m *Manager) Resolve(token string) (*Session, error) {
	id, err := m.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	sess, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrUnknownSession
	}
	return sess, nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

type contextKey string

const sessionContextKey contextKey = "session"

// NewContext attaches the session to the context.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// FromContext returns the request's session. ErrNoSession here means a
// route touching session state was wired outside the session middleware,
// which is a bug in the router, not a user error.
func FromContext(ctx context.Context) (*Session, error) {
	sess, ok := ctx.Value(sessionContextKey).(*Session)
	if !ok || sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}
