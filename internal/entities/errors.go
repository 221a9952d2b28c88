// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotEditing signals an update without an edit target.
	ErrNotEditing = errors.New("no user is being edited")
	// ErrViewUnavailable signals an action on a screen whose initial load failed.
	ErrViewUnavailable = errors.New("view unavailable")
)
