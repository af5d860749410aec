// Package common defines shared constants and sentinel errors used across
// the StackGuard client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrCorruptData = errors.New("corrupt stored data")

	// Session errors. Both are reported to the user as a single generic banner.
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
