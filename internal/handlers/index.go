package handlers

import "net/http"

// NewIndexHandler returns an HTTP handler sending visitors to the rental list.
// @Summary Home page
// @Tags van
// @Success 302 {string} string "Redirect to /van/"
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, RentalsPath, http.StatusFound)
	}
}
