package errtree

import "fmt"

// DecodeError reports a failure to decode the canonical JSON shape of an
// error tree: either the payload is not valid JSON for the shape, or a
// required field is missing or null.
type DecodeError struct {
	// Field names the missing or null required field ("msg" or "sources").
	// Empty when the failure came from the underlying JSON decoder.
	Field string

	cause error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("error tree: missing or null %q field", e.Field)
	}
	return "error tree: " + e.cause.Error()
}

// Unwrap returns the underlying decoder error, if any.
func (e *DecodeError) Unwrap() error {
	return e.cause
}
