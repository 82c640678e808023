package structs

import (
	"fmt"
	"strings"
)

// ValidationError marks bad input caught before any network call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// AmbiguousResponseError marks a 2xx response whose body carries none
// of the fields the caller needs.
type AmbiguousResponseError struct {
	Tried []string
}

func (e *AmbiguousResponseError) Error() string {
	return fmt.Sprintf("ambiguous response: no usable field, tried %s", strings.Join(e.Tried, ", "))
}
