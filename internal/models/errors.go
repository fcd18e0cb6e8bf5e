package models

import "errors"

var (
	// ErrAlreadyExists is returned by the store when an insert violates a unique constraint.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidData is returned by the store when a value cannot be converted to its column type.
	ErrInvalidData = errors.New("invalid data")
)
