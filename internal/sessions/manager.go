// Package sessions binds browser cookies to server-side session state.
//
// The cookie carries a signed token naming a session id; the state itself
// (bound user id, pending flash messages) lives in a Store.
package sessions

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
)

//go:generate mockgen -source=manager.go -destination=mocks.go -package=sessions

// CookieName is the name of the session cookie.
const CookieName = "session"

// Store persists session state.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Set(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, id string) error
}

// Tokener signs session ids into cookie values and back.
type Tokener interface {
	Generate(ctx context.Context, sessionID string) (string, error)
	GetSessionID(ctx context.Context, tokenString string) (string, error)
}

// Manager loads, saves and clears sessions.
type Manager struct {
	store   Store
	tokener Tokener
	maxAge  time.Duration
	secure  bool
}

// NewManager creates a Manager. maxAge bounds the cookie lifetime and should
// match the store expiration.
func NewManager(store Store, tokener Tokener, maxAge time.Duration, secure bool) *Manager {
	return &Manager{
		store:   store,
		tokener: tokener,
		maxAge:  maxAge,
		secure:  secure,
	}
}

// Load returns the session referenced by the request cookie.
// A missing, forged or expired cookie yields a fresh anonymous session.
func (m *Manager) Load(ctx context.Context, r *http.Request) *models.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return newSession()
	}

	id, err := m.tokener.GetSessionID(ctx, cookie.Value)
	if err != nil {
		logger.Log.Warnw("rejected session cookie", "error", err)
		return newSession()
	}

	sess, err := m.store.Get(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load session", "session_id", id, "error", err)
		return newSession()
	}
	if sess == nil {
		return newSession()
	}

	return sess
}

// Save persists the session and refreshes the cookie.
func (m *Manager) Save(ctx context.Context, w http.ResponseWriter, sess *models.Session) error {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}

	if err := m.store.Set(ctx, sess); err != nil {
		return err
	}

	token, err := m.tokener.Generate(ctx, sess.ID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Renew discards every value of sess and returns an empty session with a new id.
// Used at login so a pre-login session id is never reused.
func (m *Manager) Renew(ctx context.Context, sess *models.Session) *models.Session {
	m.discard(ctx, sess)
	return newSession()
}

// Destroy discards the session and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, sess *models.Session) {
	m.discard(ctx, sess)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) discard(ctx context.Context, sess *models.Session) {
	if sess == nil || sess.ID == "" {
		return
	}
	if err := m.store.Delete(ctx, sess.ID); err != nil {
		logger.Log.Errorw("failed to delete session", "session_id", sess.ID, "error", err)
	}
}

func newSession() *models.Session {
	return &models.Session{ID: uuid.NewString()}
}
