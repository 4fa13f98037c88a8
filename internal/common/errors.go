// Package common defines shared sentinel errors used across skilltrack
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrSaveFailed = errors.New("failed to save data file")

	// Service-level errors.
	ErrValidation   = errors.New("validation error")
	ErrUserNotFound = errors.New("user not found")

	// Feed errors (all upstream sources failed or returned unexpected shapes).
	ErrNoQuote = errors.New("no quote available")
)
