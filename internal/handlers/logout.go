package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/van-rental-manager/internal/middlewares"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
)

// SessionDestroyer clears a session and its cookie.
type SessionDestroyer interface {
	Destroy(ctx context.Context, w http.ResponseWriter, sess *models.Session)
}

// NewLogoutHandler returns an HTTP handler that ends the session.
// @Summary User logout
// @Description Clear the session, whether or not one exists, and redirect to the login page
// @Tags auth
// @Success 302 {string} string "Redirect to /auth/login"
// @Router /auth/logout [get]
func NewLogoutHandler(sessions SessionDestroyer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.Destroy(r.Context(), w, middlewares.GetSessionFromContext(r.Context()))
		http.Redirect(w, r, LoginPath, http.StatusFound)
	}
}
