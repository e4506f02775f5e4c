package services

import "errors"

var (
	// ErrInvalidDateFormat is returned when a submitted date is not YYYY-MM-DD.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
	// ErrNotFound is returned when a date or food lookup finds nothing.
	ErrNotFound = errors.New("not found")
	// ErrInvalidFood is returned when a food has no name or non-finite macros.
	ErrInvalidFood = errors.New("invalid food")
)
