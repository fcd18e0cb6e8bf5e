package models

// User represents a row of the "user" table.
type User struct {
	ID          int64   `json:"id" db:"id"`                     // Primary key
	Username    string  `json:"username" db:"username"`         // Unique username
	Password    string  `json:"-" db:"password"`                // bcrypt hash, never the plaintext
	Email       string  `json:"email" db:"email"`               // Unique notification address
	PhoneNumber *string `json:"phone_number" db:"phone_number"` // Optional phone number
}
