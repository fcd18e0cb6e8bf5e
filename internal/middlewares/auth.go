package middlewares

//go:generate mockgen -destination=mocks.go -package=middlewares . SessionLoader,UserGetter

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
)

// LoginPath is where anonymous requests to protected routes are sent.
const LoginPath = "/auth/login"

// UserGetter loads the user bound to a session.
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// LoadUserMiddleware resolves the current identity once per request.
// Anonymous requests, unknown ids and lookup failures all produce an empty identity.
// It must run after SessionMiddleware.
func LoadUserMiddleware(users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var user *models.User
			if sess := GetSessionFromContext(ctx); sess.Authenticated() {
				u, err := users.GetUser(ctx, sess.UserID)
				if err != nil {
					logger.Log.Errorw("failed to load session user", "user_id", sess.UserID, "error", err)
				} else {
					user = u
				}
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// RequireAuthMiddleware redirects to the login page unless an identity was resolved.
// The wrapped handler is never invoked for anonymous requests.
func RequireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUserFromContext(r.Context()) == nil {
			logger.Log.Infow("authentication required", "uri", r.RequestURI)
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type userContextKey struct{}

var userKey = userContextKey{}

// WithUser returns a copy of ctx carrying user as the current identity.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the current identity, or nil for anonymous requests.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
