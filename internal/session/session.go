// Package session holds the client-side authenticated identity: role,
// display name and the backend's opaque bearer token, persisted in the
// local store until logout or an authorization rejection.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cardapio-pos/web/internal/store"
)

// CookieName carries the session id in the browser.
const CookieName = "cardapio_session"

const keyPrefix = "session:"

// ErrNoSession is returned when no live session exists for an id.
var ErrNoSession = errors.New("session: not found")

// Session is one authenticated browser.
type Session struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

// Manager owns the session lifecycle against the local store.
type Manager struct {
	store store.Store
	now   func() time.Time
}

func NewManager(st store.Store) *Manager {
	return &Manager{store: st, now: time.Now}
}

// Create persists a new session and returns it.
func (m *Manager) Create(ctx context.Context, token, role, name, userID string) (*Session, error) {
	sess := &Session{
		ID:     uuid.NewString(),
		Token:  token,
		Role:   role,
		Name:   name,
		UserID: userID,
	}
	if err := m.save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get rehydrates the session for id. Sessions whose token already expired
// are destroyed on the spot, so views never render with a token the
// backend is guaranteed to reject.
func (m *Manager) Get(ctx context.Context, id string) (*Session, error) {
	data, err := m.store.Get(ctx, keyPrefix+id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}

	if m.tokenExpired(sess.Token) {
		_ = m.Destroy(ctx, id)
		return nil, ErrNoSession
	}
	return &sess, nil
}

// Destroy removes the session for id. Destroying an absent session is a
// no-op.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	return m.store.Delete(ctx, keyPrefix+id)
}

func (m *Manager) save(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	return m.store.Set(ctx, keyPrefix+sess.ID, data)
}

// tokenExpired reads the exp claim without verifying the signature; the
// backend holds the signing secret, this side only passes the token
// through. Tokens that do not parse as JWTs are treated as opaque and
// left to the backend to judge.
func (m *Manager) tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(m.now())
}
