package services

import (
	"errors"
	"fmt"
)

// ErrValidation is wrapped by every input validation failure.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidRating  = fmt.Errorf("%w: rating out of range", ErrValidation)
	ErrCommentTooLong = fmt.Errorf("%w: comment too long", ErrValidation)

	ErrUnknownToken = errors.New("invalid token")
	ErrAlreadyVoted = errors.New("vote already exists for this token")

	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNoPatientEmail      = errors.New("appointment has no patient email")
)
