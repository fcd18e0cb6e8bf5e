package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/van-rental-manager/internal/middlewares"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/sbilibin2017/van-rental-manager/internal/services"
	"github.com/sbilibin2017/van-rental-manager/internal/templates"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	NotifyLogin(ctx context.Context, user *models.User)
}

// SessionRenewer replaces the session of a request at login.
type SessionRenewer interface {
	SessionSaver
	Renew(ctx context.Context, sess *models.Session) *models.Session
}

// NewLoginPageHandler returns an HTTP handler showing the login form.
// @Summary Login form
// @Tags auth
// @Produce html
// @Success 200 {string} string "Login page"
// @Router /auth/login [get]
func NewLoginPageHandler(renderer Renderer, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, sessions, templates.Login, &templates.Page{Form: models.LoginForm{}})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Verify credentials, bind the user to a fresh session and redirect to the rentals
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 {string} string "Redirect to /van/ with a session cookie"
// @Failure 200 {string} string "Form shown again with an error message"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, renderer Renderer, sessions SessionRenewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		form := models.LoginForm{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}

		user, err := svc.Login(ctx, form.Username, form.Password)
		if err != nil {
			var msg string
			switch {
			case errors.Is(err, services.ErrIncorrectUsername):
				msg = "Incorrect username."
			case errors.Is(err, services.ErrIncorrectPassword):
				msg = "Incorrect password."
			default:
				requestLogger(r.Context()).Errorw("internal server error", "err", err)
				msg = msgUnexpected
			}

			form.Password = ""
			render(w, r, renderer, sessions, templates.Login, &templates.Page{Form: form}, errorFlash(msg))
			return
		}

		sess := sessions.Renew(ctx, middlewares.GetSessionFromContext(ctx))
		sess.UserID = user.ID
		if err := sessions.Save(ctx, w, sess); err != nil {
			requestLogger(r.Context()).Errorw("failed to save session", "user_id", user.ID, "err", err)
			form.Password = ""
			render(w, r, renderer, sessions, templates.Login, &templates.Page{Form: form}, errorFlash(msgUnexpected))
			return
		}

		svc.NotifyLogin(ctx, user)
		http.Redirect(w, r, RentalsPath, http.StatusFound)
	}
}
