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

const (
	msgRentalAdded    = "Rental added successfully"
	msgRentalUpdated  = "Rental updated successfully"
	msgRentalDeleted  = "Rental deleted successfully"
	msgRentalNotFound = "Rental not found"
	msgRentalInvalid  = "Invalid rental data: check the dates and the price."
)

// RentalLister lists the rentals of an owner.
type RentalLister interface {
	ListRentals(ctx context.Context, owner *models.User) ([]models.Rental, error)
}

// RentalGetter loads one rental of an owner.
type RentalGetter interface {
	GetRental(ctx context.Context, owner *models.User, id int64) (*models.Rental, error)
}

// RentalAdder creates rentals.
type RentalAdder interface {
	AddRental(ctx context.Context, owner *models.User, form models.RentalForm) (int64, error)
}

// RentalUpdater overwrites rentals.
type RentalUpdater interface {
	UpdateRental(ctx context.Context, owner *models.User, id int64, form models.RentalForm) error
}

// RentalDeleter removes rentals.
type RentalDeleter interface {
	DeleteRental(ctx context.Context, owner *models.User, id int64) error
}

// NewRentalsHandler returns an HTTP handler listing the rentals of the current user.
// @Summary List rentals
// @Description Rentals of the logged in user, newest first
// @Tags van
// @Produce html
// @Success 200 {string} string "Rentals page"
// @Success 302 {string} string "Redirect to /auth/login when not logged in"
// @Router /van/ [get]
func NewRentalsHandler(svc RentalLister, renderer Renderer, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middlewares.GetUserFromContext(r.Context())

		rentals, err := svc.ListRentals(r.Context(), owner)
		if err != nil {
			requestLogger(r.Context()).Errorw("internal server error", "err", err)
			render(w, r, renderer, sessions, templates.Rentals, &templates.Page{}, errorFlash(msgUnexpected))
			return
		}

		render(w, r, renderer, sessions, templates.Rentals, &templates.Page{Rentals: rentals})
	}
}

// NewAddRentalPageHandler returns an HTTP handler showing an empty rental form.
// @Summary New rental form
// @Tags van
// @Produce html
// @Success 200 {string} string "Rental form"
// @Router /van/rental/add [get]
func NewAddRentalPageHandler(renderer Renderer, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, sessions, templates.AddRental, &templates.Page{Form: models.RentalForm{}})
	}
}

// NewAddRentalHandler returns an HTTP handler creating a rental for the current user.
// @Summary Add rental
// @Description Store a rental and email the owner a reminder
// @Tags van
// @Accept x-www-form-urlencoded
// @Produce html
// @Param rental_date_from formData string true "First day (YYYY-MM-DD)"
// @Param rental_date_to formData string true "Last day (YYYY-MM-DD)"
// @Param client_contact formData string true "Client contact"
// @Param pickup_location formData string true "Pickup location"
// @Param destination formData string true "Destination"
// @Param agreed_price formData number true "Agreed price"
// @Success 302 {string} string "Redirect to /van/"
// @Failure 200 {string} string "Form shown again with an error message"
// @Router /van/rental/add [post]
func NewAddRentalHandler(svc RentalAdder, renderer Renderer, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := middlewares.GetUserFromContext(r.Context())
		form := rentalFormFromRequest(r)

		if _, err := svc.AddRental(r.Context(), owner, form); err != nil {
			msg := msgRentalInvalid
			if !errors.Is(err, services.ErrInvalidRental) {
				requestLogger(r.Context()).Errorw("internal server error", "err", err)
				msg = msgUnexpected
			}
			render(w, r, renderer, sessions, templates.AddRental, &templates.Page{Form: form}, errorFlash(msg))
			return
		}

		redirect(w, r, sessions, RentalsPath, models.FlashSuccess, msgRentalAdded)
	}
}

// NewUpdateRentalPageHandler returns an HTTP handler showing a prefilled rental form.
// @Summary Edit rental form
// @Tags van
// @Produce html
// @Param id path int true "Rental ID"
// @Success 200 {string} string "Rental form"
// @Success 302 {string} string "Redirect to /van/ when the rental is not found"
// @Router /van/rental/{id}/update [get]
func NewUpdateRentalPageHandler(svc RentalGetter, renderer Renderer, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := rentalID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		owner := middlewares.GetUserFromContext(r.Context())

		rental, err := svc.GetRental(r.Context(), owner, id)
		if err != nil {
			if errors.Is(err, services.ErrRentalNotFound) {
				redirect(w, r, sessions, RentalsPath, models.FlashError, msgRentalNotFound)
				return
			}
			requestLogger(r.Context()).Errorw("internal server error", "err", err)
			redirect(w, r, sessions, RentalsPath, models.FlashError, msgUnexpected)
			return
		}

		render(w, r, renderer, sessions, templates.UpdateRental, &templates.Page{
			Form:     models.FormFromRental(rental),
			RentalID: rental.ID,
		})
	}
}

// NewUpdateRentalHandler returns an HTTP handler overwriting a rental of the current user.
// @Summary Update rental
// @Tags van
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "Rental ID"
// @Param rental_date_from formData string true "First day (YYYY-MM-DD)"
// @Param rental_date_to formData string true "Last day (YYYY-MM-DD)"
// @Param client_contact formData string true "Client contact"
// @Param pickup_location formData string true "Pickup location"
// @Param destination formData string true "Destination"
// @Param agreed_price formData number true "Agreed price"
// @Success 302 {string} string "Redirect to /van/"
// @Failure 200 {string} string "Form shown again with an error message"
// @Router /van/rental/{id}/update [post]
func NewUpdateRentalHandler(svc RentalUpdater, renderer Renderer, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := rentalID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		owner := middlewares.GetUserFromContext(r.Context())
		form := rentalFormFromRequest(r)

		err := svc.UpdateRental(r.Context(), owner, id, form)
		switch {
		case err == nil:
			redirect(w, r, sessions, RentalsPath, models.FlashSuccess, msgRentalUpdated)
		case errors.Is(err, services.ErrRentalNotFound):
			redirect(w, r, sessions, RentalsPath, models.FlashError, msgRentalNotFound)
		case errors.Is(err, services.ErrInvalidRental):
			render(w, r, renderer, sessions, templates.UpdateRental, &templates.Page{Form: form, RentalID: id}, errorFlash(msgRentalInvalid))
		default:
			requestLogger(r.Context()).Errorw("internal server error", "err", err)
			render(w, r, renderer, sessions, templates.UpdateRental, &templates.Page{Form: form, RentalID: id}, errorFlash(msgUnexpected))
		}
	}
}

// NewDeleteRentalHandler returns an HTTP handler removing a rental of the current user.
// @Summary Delete rental
// @Tags van
// @Param id path int true "Rental ID"
// @Success 302 {string} string "Redirect to /van/ with the outcome as a flash message"
// @Router /van/rental/{id}/delete [post]
func NewDeleteRentalHandler(svc RentalDeleter, sessions SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := rentalID(r)
		if !ok {
			http.NotFound(w, r)
			return
		}
		owner := middlewares.GetUserFromContext(r.Context())

		err := svc.DeleteRental(r.Context(), owner, id)
		switch {
		case err == nil:
			redirect(w, r, sessions, RentalsPath, models.FlashSuccess, msgRentalDeleted)
		case errors.Is(err, services.ErrRentalNotFound):
			redirect(w, r, sessions, RentalsPath, models.FlashError, msgRentalNotFound)
		default:
			requestLogger(r.Context()).Errorw("internal server error", "err", err)
			redirect(w, r, sessions, RentalsPath, models.FlashError, msgUnexpected)
		}
	}
}
