package handlers

//go:generate mockgen -destination=mocks.go -package=handlers . Renderer,SessionSaver,SessionRenewer,SessionDestroyer,Registerer,Loginer,RentalLister,RentalGetter,RentalAdder,RentalUpdater,RentalDeleter

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sbilibin2017/van-rental-manager/internal/logger"
	"github.com/sbilibin2017/van-rental-manager/internal/middlewares"
	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/sbilibin2017/van-rental-manager/internal/templates"
)

// Paths handlers redirect to.
const (
	LoginPath    = middlewares.LoginPath
	RegisterPath = "/auth/register"
	RentalsPath  = "/van/"
)

const msgUnexpected = "Something went wrong, please try again."

// Renderer writes a named HTML page.
type Renderer interface {
	Render(w io.Writer, name string, page *templates.Page) error
}

// SessionSaver persists the session of the request.
type SessionSaver interface {
	Save(ctx context.Context, w http.ResponseWriter, sess *models.Session) error
}

// render shows a page with the flashes queued in the session followed by extra.
// Displayed flashes are removed from the session.
func render(w http.ResponseWriter, r *http.Request, renderer Renderer, sessions SessionSaver, name string, page *templates.Page, extra ...models.Flash) {
	ctx := r.Context()

	sess := middlewares.GetSessionFromContext(ctx)
	if queued := sess.PopFlashes(); len(queued) > 0 {
		page.Flashes = append(queued, page.Flashes...)
		if err := sessions.Save(ctx, w, sess); err != nil {
			requestLogger(r.Context()).Errorw("failed to clear flashes", "session_id", sess.ID, "error", err)
		}
	}
	page.Flashes = append(page.Flashes, extra...)
	page.User = middlewares.GetUserFromContext(ctx)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderer.Render(w, name, page); err != nil {
		requestLogger(r.Context()).Errorw("failed to render page", "page", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// redirect queues a flash for the next page and redirects to url.
func redirect(w http.ResponseWriter, r *http.Request, sessions SessionSaver, url, category, message string) {
	ctx := r.Context()

	sess := middlewares.GetSessionFromContext(ctx)
	sess.AddFlash(category, message)
	if err := sessions.Save(ctx, w, sess); err != nil {
		requestLogger(r.Context()).Errorw("failed to save flash", "session_id", sess.ID, "error", err)
	}

	http.Redirect(w, r, url, http.StatusFound)
}

// requestLogger tags log entries with the id assigned by LoggingMiddleware.
func requestLogger(ctx context.Context) *zap.SugaredLogger {
	return logger.Log.With("request_id", middlewares.GetRequestIDFromContext(ctx))
}

func errorFlash(message string) models.Flash {
	return models.Flash{Category: models.FlashError, Message: message}
}

// rentalID reads the {id} route parameter.
func rentalID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func rentalFormFromRequest(r *http.Request) models.RentalForm {
	return models.RentalForm{
		RentalDateFrom: r.PostFormValue("rental_date_from"),
		RentalDateTo:   r.PostFormValue("rental_date_to"),
		ClientContact:  r.PostFormValue("client_contact"),
		PickupLocation: r.PostFormValue("pickup_location"),
		Destination:    r.PostFormValue("destination"),
		AgreedPrice:    r.PostFormValue("agreed_price"),
	}
}
