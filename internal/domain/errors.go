// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a domain entity fails validation. The
// specific validation sentinels below all wrap it, so callers can match
// the whole category with errors.Is(err, ErrValidation) or a single
// failure with its own sentinel.
var ErrValidation = errors.New("validation failed")

// Specific validation failures, each matching ErrValidation.
var (
	// ErrEmptySubject is returned when the email subject is empty or
	// contains only whitespace.
	ErrEmptySubject = fmt.Errorf("%w: subject cannot be empty", ErrValidation)

	// ErrSubjectTooLong is returned when the email subject exceeds
	// MaxSubjectLength bytes.
	ErrSubjectTooLong = fmt.Errorf("%w: subject exceeds maximum length", ErrValidation)

	// ErrInvalidTone is returned when a tone is not one of the supported
	// values.
	ErrInvalidTone = fmt.Errorf("%w: invalid tone", ErrValidation)

	// ErrParagraphCountOutOfRange is returned when the requested paragraph
	// count falls outside [MinParagraphs, MaxParagraphs]. Out-of-range
	// values are rejected, never clamped.
	ErrParagraphCountOutOfRange = fmt.Errorf("%w: paragraph count out of range", ErrValidation)

	// ErrEmptySessionID is returned when a session has a nil ID.
	ErrEmptySessionID = fmt.Errorf("%w: session ID cannot be empty", ErrValidation)
)

// ErrEmptyEmail is returned when a generation result carries no email
// text. This is an internal invariant breach, not a request validation
// failure, so it deliberately does not wrap ErrValidation.
var ErrEmptyEmail = errors.New("email cannot be empty")
