package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/van-rental-manager/internal/models"
)

// SessionLoader reads the session referenced by the request cookie.
type SessionLoader interface {
	Load(ctx context.Context, r *http.Request) *models.Session
}

// SessionMiddleware loads the session of the request and stores it in the context.
func SessionMiddleware(loader SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := loader.Load(r.Context(), r)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

type sessionContextKey struct{}

var sessionKey = sessionContextKey{}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSessionFromContext returns the session of the request.
// Outside SessionMiddleware an empty, unsaved session is returned.
func GetSessionFromContext(ctx context.Context) *models.Session {
	if sess, ok := ctx.Value(sessionKey).(*models.Session); ok && sess != nil {
		return sess
	}
	return &models.Session{}
}
