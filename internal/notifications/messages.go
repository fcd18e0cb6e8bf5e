package notifications

import (
	"fmt"
	"time"
)

// Subjects of the emails sent by the application.
const (
	WelcomeSubject = "Welcome to Van Manager"
	LoginSubject   = "New login to your Van Manager account"
	RentalSubject  = "Van Rental Notification"
)

// WelcomeBody greets a newly registered user.
func WelcomeBody(username string) string {
	return fmt.Sprintf("Hello %s, your account has been created. You can now log in and start recording rentals.", username)
}

// LoginBody tells a user that their account was just used to log in.
func LoginBody(username string, at time.Time) string {
	return fmt.Sprintf("Hello %s, your account was used to log in on %s.", username, at.Format("2006-01-02 15:04:05"))
}

// RentalBody reminds the owner of a rental scheduled for day.
func RentalBody(day time.Time) string {
	return fmt.Sprintf("Your van rental is scheduled for %s. Please prepare accordingly.", day.Format("2006-01-02 15:04:05"))
}
