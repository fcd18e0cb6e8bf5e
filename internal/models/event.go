package models

// Rental event types.
const (
	RentalCreated = "rental.created"
	RentalUpdated = "rental.updated"
	RentalDeleted = "rental.deleted"
)

// RentalEvent is the audit record published after a rental changes.
type RentalEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier of the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (in seconds) of the change.
	RentalID  int64  `json:"rental_id"` // RentalID identifies the changed rental.
	UserID    int64  `json:"user_id"`   // UserID is the owner of the rental.
	Type      string `json:"type"`      // Type is one of rental.created, rental.updated or rental.deleted.
}
