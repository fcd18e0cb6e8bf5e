package models

// RegisterForm holds the fields submitted by the registration form.
// swagger:model RegisterForm
type RegisterForm struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" form:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" form:"password"`

	// Password repeated
	// required: true
	// example: secret123
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" form:"email"`

	// Phone number
	// example: 555-0100
	PhoneNumber string `json:"phone_number" form:"phone_number"`
}
