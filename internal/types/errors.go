package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPreferences = errors.New("invalid trip preferences")
	ErrSessionNotFound    = errors.New("planner session not found")
	ErrItineraryNotReady  = errors.New("no itinerary available for this session")
	ErrDayNotFound        = errors.New("day not found in itinerary")
	ErrNoActivities       = errors.New("day has no activities")
)

// GenericGenerationMessage is the only failure text users ever see.
const GenericGenerationMessage = "Failed to generate itinerary. Please try again later."

type GenerationErrorKind string

const (
	InvalidFormat           GenerationErrorKind = "invalid_format"
	NetworkOrServiceFailure GenerationErrorKind = "network_or_service_failure"
)

// GenerationError is returned by the itinerary pipeline for any failure.
type GenerationError struct {
	Kind GenerationErrorKind
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("itinerary generation failed (%s)", e.Kind)
	}
	return fmt.Sprintf("itinerary generation failed (%s): %v", e.Kind, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func NewInvalidFormatError(err error) *GenerationError {
	return &GenerationError{Kind: InvalidFormat, Err: err}
}

func NewServiceFailureError(err error) *GenerationError {
	return &GenerationError{Kind: NetworkOrServiceFailure, Err: err}
}

// GenerationErrorKindOf extracts the kind, defaulting to a service failure.
func GenerationErrorKindOf(err error) GenerationErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return NetworkOrServiceFailure
}
