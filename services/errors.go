package services

import "errors"

// Sentinel errors shared across services; controllers map these to HTTP statuses.
var (
	ErrNotFound   = errors.New("record not found")
	ErrCapacity   = errors.New("no seats available")
	ErrConflict   = errors.New("conflicting record exists")
	ErrGateway    = errors.New("payment gateway error")
	ErrValidation = errors.New("invalid input")
)
