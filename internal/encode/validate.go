package encode

import "strings"

// ReasonEmptyInput is reported for empty or whitespace-only identifiers
const ReasonEmptyInput = "Please enter an ID value"

// Validation is the outcome of checking a candidate identifier
type Validation struct {
	Valid  bool
	Reason string
}

// Validate accepts any identifier that is not blank. There is intentionally
// no length cap or character-set restriction here; symbology limits are
// enforced by the encoders.
func Validate(candidate string) Validation {
	if strings.TrimSpace(candidate) == "" {
		return Validation{Valid: false, Reason: ReasonEmptyInput}
	}
	return Validation{Valid: true}
}

// ValidationError is returned when an identifier is rejected before encoding
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Err returns nil for valid input and a *ValidationError otherwise
func (v Validation) Err() error {
	if v.Valid {
		return nil
	}
	return &ValidationError{Reason: v.Reason}
}
