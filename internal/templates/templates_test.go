package templates

import (
	"bytes"
	"testing"
	"time"

	"github.com/sbilibin2017/van-rental-manager/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Pages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	user := &models.User{ID: 1, Username: "ann"}
	rental := models.Rental{
		ID:             4,
		UserID:         1,
		RentalDateFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		RentalDateTo:   time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		ClientContact:  "555-0100",
		PickupLocation: "Manila",
		Destination:    "Baguio",
		AgreedPrice:    3000,
	}

	tests := []struct {
		name     string
		page     string
		data     *Page
		contains []string
	}{
		{
			name:     "register",
			page:     Register,
			data:     &Page{Form: models.RegisterForm{Username: "ann"}},
			contains: []string{`action="/auth/register"`, `value="ann"`, "Log In"},
		},
		{
			name:     "login with flash",
			page:     Login,
			data:     &Page{Form: models.LoginForm{}, Flashes: []models.Flash{{Category: models.FlashError, Message: "Incorrect password."}}},
			contains: []string{`action="/auth/login"`, `flash-error`, "Incorrect password."},
		},
		{
			name:     "rentals",
			page:     Rentals,
			data:     &Page{User: user, Rentals: []models.Rental{rental}},
			contains: []string{"ann", "Log Out", "2024-01-01", "2024-01-03", "Manila", "Baguio", "3000.00", "/van/rental/4/delete"},
		},
		{
			name:     "empty rentals",
			page:     Rentals,
			data:     &Page{User: user},
			contains: []string{"No rentals yet."},
		},
		{
			name:     "add rental",
			page:     AddRental,
			data:     &Page{User: user, Form: models.RentalForm{PickupLocation: "Manila"}},
			contains: []string{`action="/van/rental/add"`, `value="Manila"`},
		},
		{
			name:     "update rental",
			page:     UpdateRental,
			data:     &Page{User: user, RentalID: 4, Form: models.FormFromRental(&rental)},
			contains: []string{`action="/van/rental/4/update"`, `value="2024-01-01"`, `value="3000.00"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, tt.page, tt.data))
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestRender_EscapesUserInput(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, Rentals, &Page{
		User:    &models.User{Username: "ann"},
		Rentals: []models.Rental{{ID: 1, ClientContact: "<script>alert(1)</script>"}},
	})
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}

func TestRender_UnknownPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing.html", &Page{}))
	assert.Zero(t, buf.Len())
}
