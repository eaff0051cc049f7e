// Package common defines shared constants and sentinel errors used across
// RentMyWaifu components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrCorruptStore = errors.New("corrupt store")
	ErrNotFound     = errors.New("not found")

	// Auth errors.
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrMissingField      = errors.New("missing required field")

	// Policy errors.
	ErrPermissionDenied = errors.New("permission denied")

	// Support form errors.
	ErrMissingEmail = errors.New("email is required")
)
