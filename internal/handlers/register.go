package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/sbilibin2017/van-rental-manager/internal/services"
	"github.com/sbilibin2017/van-rental-manager/internal/templates"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, form models.RegisterForm) error
}

// NewRegisterPageHandler returns an HTTP handler showing the registration form.
// @Summary Registration form
// @Tags auth
// @Produce html
// @Success 200 {string} string "Registration page"
// @Router /auth/register [get]
func NewRegisterPageHandler(renderer Renderer, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, sessions, templates.Register, &templates.Page{Form: models.RegisterForm{}})
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary User registration
// @Description Create an account and redirect to the login page
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param confirm_password formData string true "Password confirmation"
// @Param email formData string true "Email"
// @Param phone_number formData string false "Phone number"
// @Success 302 {string} string "Redirect to /auth/login"
// @Failure 200 {string} string "Form shown again with an error message"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer, renderer Renderer, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := models.RegisterForm{
			Username:        r.PostFormValue("username"),
			Password:        r.PostFormValue("password"),
			ConfirmPassword: r.PostFormValue("confirm_password"),
			Email:           r.PostFormValue("email"),
			PhoneNumber:     r.PostFormValue("phone_number"),
		}

		if err := svc.Register(r.Context(), form); err != nil {
			var msg string
			switch {
			case errors.Is(err, services.ErrUsernameRequired):
				msg = "Username is required."
			case errors.Is(err, services.ErrPasswordRequired):
				msg = "Password is required."
			case errors.Is(err, services.ErrPasswordMismatch):
				msg = "Passwords do not match."
			case errors.Is(err, services.ErrEmailRequired):
				msg = "Email is required."
			case errors.Is(err, services.ErrUserAlreadyExists):
				msg = fmt.Sprintf("User %s is already registered or taken.", form.Username)
			default:
				requestLogger(r.Context()).Errorw("internal server error", "err", err)
				msg = msgUnexpected
			}

			form.Password, form.ConfirmPassword = "", ""
			render(w, r, renderer, sessions, templates.Register, &templates.Page{Form: form}, errorFlash(msg))
			return
		}

		redirect(w, r, sessions, LoginPath, models.FlashSuccess, "Registration successful. Please log in.")
	}
}
