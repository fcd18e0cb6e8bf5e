// Package templates renders the HTML pages of the application from templates
// embedded into the binary.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/sbilibin2017/van-rental-manager/internal/models"
)

// Page names.
const (
	Register     = "auth/register.html"
	Login        = "auth/login.html"
	Rentals      = "van_manager/rentals.html"
	AddRental    = "van_manager/add_rental.html"
	UpdateRental = "van_manager/update_rental.html"
)

//go:embed html
var files embed.FS

// Page is the data passed to every page.
type Page struct {
	User     *models.User    // Current identity, nil for anonymous visitors
	Flashes  []models.Flash  // Messages to show once
	Form     any             // Values to prefill the page form with
	Rentals  []models.Rental // Rentals listed on the index page
	RentalID int64           // Rental being edited
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string {
		return t.Format(models.DateLayout)
	},
	"price": func(p float64) string {
		return strconv.FormatFloat(p, 'f', 2, 64)
	},
}

// Renderer executes the embedded pages.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the base layout.
func New() (*Renderer, error) {
	pages := map[string][]string{
		Register:     {"html/base.html", "html/auth/register.html"},
		Login:        {"html/base.html", "html/auth/login.html"},
		Rentals:      {"html/base.html", "html/van_manager/rentals.html"},
		AddRental:    {"html/base.html", "html/van_manager/rental_form.html", "html/van_manager/add_rental.html"},
		UpdateRental: {"html/base.html", "html/van_manager/rental_form.html", "html/van_manager/update_rental.html"},
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for name, patterns := range pages {
		tmpl, err := template.New(name).Funcs(funcs).ParseFS(files, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// Render writes the named page. Nothing is written if execution fails.
func (r *Renderer) Render(w io.Writer, name string, page *Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", page); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
