package triage

import (
	"errors"
	"fmt"
	"strings"
)

// MinSymptomLength is the minimum length of a symptom description.
// Shorter input is rejected before any analysis is attempted.
const MinSymptomLength = 10

var (
	// ErrInvalidInput is returned for empty or too-short symptom descriptions
	ErrInvalidInput = errors.New("symptom description too short")

	// ErrExternalService is returned when the AI analysis path fails
	// (network error, timeout, or malformed model output)
	ErrExternalService = errors.New("external analysis service failed")
)

// ValidateSymptoms rejects input that is too short to analyze.
func ValidateSymptoms(text string) error {
	if len(strings.TrimSpace(text)) < MinSymptomLength {
		return fmt.Errorf("%w: need at least %d characters", ErrInvalidInput, MinSymptomLength)
	}
	return nil
}
