// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Ephemeris errors.
	ErrInvalidDate = errors.New("date outside supported conversion range")
	ErrEphemeris   = errors.New("ephemeris computation failed")

	// Geocoder errors.
	ErrLocationNotFound = errors.New("location not found")
	ErrGeocoderTimeout  = errors.New("geocoding service timed out")

	// Storage errors.
	ErrChartNotFound = errors.New("chart not found")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
