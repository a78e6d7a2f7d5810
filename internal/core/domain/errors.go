package domain

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound     = errors.New("poll config not found")
	ErrDeviceIDRequired   = errors.New("device_id is required")
	ErrInvalidOption      = errors.New("Invalid option")
	ErrAlreadyVoted       = errors.New("This device already voted")
	ErrSuggestionRequired = errors.New("Suggestion text is required")
	ErrSuggestionTooLong  = fmt.Errorf("Suggestion must be %d chars or less", MaxSuggestionLength)
	ErrAlreadySuggested   = errors.New("Only one suggestion per day is allowed")
)

// AlreadyVotedError carries the option a device voted for before.
type AlreadyVotedError struct {
	Option string
}

func (e *AlreadyVotedError) Error() string {
	return ErrAlreadyVoted.Error()
}

func (e *AlreadyVotedError) Unwrap() error {
	return ErrAlreadyVoted
}

// ValidationError is a rejected admin configuration. Reason is shown to the
// admin verbatim.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalidf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
