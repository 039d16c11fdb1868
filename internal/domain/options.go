package domain

import (
	"fmt"
	"strings"
)

// Tone describes the requested voice of a generated email.
type Tone string

// Supported tone values.
const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneUrgent       Tone = "urgent"
	ToneFormal       Tone = "formal"
)

// Bounds enforced when validating GenerationOptions.
const (
	MinParagraphs    = 1
	MaxParagraphs    = 5
	MaxSubjectLength = 500
)

// ParseTone converts a string into a Tone. Matching is case-insensitive so
// UI-supplied values like "Professional" are accepted. An empty string
// resolves to ToneProfessional, the default.
func ParseTone(s string) (Tone, error) {
	switch Tone(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return ToneProfessional, nil
	case ToneProfessional:
		return ToneProfessional, nil
	case ToneFriendly:
		return ToneFriendly, nil
	case ToneUrgent:
		return ToneUrgent, nil
	case ToneFormal:
		return ToneFormal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTone, s)
	}
}

// GenerationOptions carries everything a caller can choose about one email
// generation request. The zero value is not valid; use NewGenerationOptions
// or populate the fields and call Validate before use.
type GenerationOptions struct {
	// Subject is the email subject line the draft is built around.
	Subject string

	// Tone selects the voice of the email. Empty means professional.
	Tone Tone

	// ParagraphCount is the requested body length in paragraphs,
	// bounded by [MinParagraphs, MaxParagraphs].
	ParagraphCount int

	// IncludePostscript adds a P.S. line to the generated email.
	IncludePostscript bool

	// Provider names the completion backend to use. Unknown values
	// resolve to the configured default backend rather than failing.
	Provider string

	// UseAnalysis runs the two-step pipeline: the subject is analyzed
	// first and the analysis is fed into the email-generation prompt.
	UseAnalysis bool
}

// NewGenerationOptions creates options for the given subject with the
// defaults the UI offers: professional tone, three paragraphs, no
// postscript. Returns an error if the subject fails validation.
func NewGenerationOptions(subject string) (GenerationOptions, error) {
	opts := GenerationOptions{
		Subject:        subject,
		Tone:           ToneProfessional,
		ParagraphCount: 3,
	}
	if err := opts.Validate(); err != nil {
		return GenerationOptions{}, err
	}
	return opts, nil
}

// Normalize fills defaulted fields in place: an empty tone becomes
// professional and surrounding whitespace is stripped from the subject.
func (o *GenerationOptions) Normalize() {
	o.Subject = strings.TrimSpace(o.Subject)
	if o.Tone == "" {
		o.Tone = ToneProfessional
	}
	o.Provider = strings.ToLower(strings.TrimSpace(o.Provider))
}

// Validate checks the options without mutating them. Callers that accept
// raw user input should Normalize first.
func (o GenerationOptions) Validate() error {
	if strings.TrimSpace(o.Subject) == "" {
		return ErrEmptySubject
	}
	if len(o.Subject) > MaxSubjectLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrSubjectTooLong, len(o.Subject), MaxSubjectLength)
	}
	if _, err := ParseTone(string(o.Tone)); err != nil {
		return err
	}
	if o.ParagraphCount < MinParagraphs || o.ParagraphCount > MaxParagraphs {
		return fmt.Errorf("%w: %d (allowed %d-%d)",
			ErrParagraphCountOutOfRange, o.ParagraphCount, MinParagraphs, MaxParagraphs)
	}
	return nil
}
