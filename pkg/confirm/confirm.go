// Package confirm gates destructive admin actions behind an explicit
// confirmation from the caller.
package confirm

import "errors"

var ErrRequired = errors.New("confirmation required")

// Error carries the question the caller must answer before retrying with
// confirmation.
type Error struct {
	Prompt string
}

func (e *Error) Error() string {
	return "confirmation required: " + e.Prompt
}

func (e *Error) Is(target error) bool {
	return target == ErrRequired
}

// Gate returns nil when confirmed, otherwise an *Error with prompt.
func Gate(confirmed bool, prompt string) error {
	if confirmed {
		return nil
	}
	return &Error{Prompt: prompt}
}

// Prompt extracts the question from err, or "" if err is not a confirmation
// error.
func Prompt(err error) string {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Prompt
	}
	return ""
}
