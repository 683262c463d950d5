package service

import "errors"

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidMeal   = errors.New("invalid data format")
	ErrUnknownArea   = errors.New("unknown delivery area")
	ErrEmptyOrder    = errors.New("order has no meals")
	ErrOrderNotFound = errors.New("order not found")
)
