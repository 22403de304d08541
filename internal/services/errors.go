// internal/services/errors.go
package services

import "errors"

// Flat error taxonomy shared by every service: lookups that do not resolve,
// rejected writes, and unique-field collisions. All are terminal for the
// caller, nothing is retried.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrEmptyCart         = errors.New("cart is empty, nothing to order")
	ErrInvalidTransition = errors.New("illegal order status transition")
)
