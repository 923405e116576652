package units

import "fmt"

// FormatError reports a malformed numeric+unit string.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid quantity %q: %s", e.Input, e.Reason)
}

func formatError(input, reason string) *FormatError {
	return &FormatError{Input: input, Reason: reason}
}
