package models

// LoginForm holds the fields submitted by the login form.
// swagger:model LoginForm
type LoginForm struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" form:"username"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" form:"password"`
}
