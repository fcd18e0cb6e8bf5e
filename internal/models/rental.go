package models

import (
	"strconv"
	"time"
)

// Rental represents a row of the rentals table.
type Rental struct {
	ID                    int64      `json:"id" db:"id"`
	UserID                int64      `json:"user_id" db:"user_id"` // Owner of the record
	RentalDateFrom        time.Time  `json:"rental_date_from" db:"rental_date_from"`
	RentalDateTo          time.Time  `json:"rental_date_to" db:"rental_date_to"`
	ClientContact         string     `json:"client_contact" db:"client_contact"`
	PickupLocation        string     `json:"pickup_location" db:"pickup_location"`
	Destination           string     `json:"destination" db:"destination"`
	AgreedPrice           float64    `json:"agreed_price" db:"agreed_price"`
	Created               time.Time  `json:"created" db:"created"`
	EmailNotificationTime *time.Time `json:"email_notification_time" db:"email_notification_time"`
}

// RentalNotification is a rental joined with the email of its owner.
type RentalNotification struct {
	RentalID int64  `db:"id"`
	Email    string `db:"email"`
}

// RentalForm holds the raw fields submitted by the add and update forms.
// Values are passed to the store as text, which enforces date and numeric types.
// swagger:model RentalForm
type RentalForm struct {
	// example: 2024-01-01
	RentalDateFrom string `json:"rental_date_from" form:"rental_date_from"`
	// example: 2024-01-03
	RentalDateTo string `json:"rental_date_to" form:"rental_date_to"`
	// example: 555-0100
	ClientContact string `json:"client_contact" form:"client_contact"`
	// example: Manila
	PickupLocation string `json:"pickup_location" form:"pickup_location"`
	// example: Baguio
	Destination string `json:"destination" form:"destination"`
	// example: 3000
	AgreedPrice string `json:"agreed_price" form:"agreed_price"`
}

// FormFromRental converts a stored rental back into form values for editing.
func FormFromRental(r *Rental) RentalForm {
	return RentalForm{
		RentalDateFrom: r.RentalDateFrom.Format(DateLayout),
		RentalDateTo:   r.RentalDateTo.Format(DateLayout),
		ClientContact:  r.ClientContact,
		PickupLocation: r.PickupLocation,
		Destination:    r.Destination,
		AgreedPrice:    strconv.FormatFloat(r.AgreedPrice, 'f', 2, 64),
	}
}

// DateLayout is the layout of rental dates in forms and pages.
const DateLayout = "2006-01-02"
