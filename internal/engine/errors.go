package engine

import "fmt"

// ValidationError reports user-actionable input problems, e.g. submitting a
// journal entry without an emotion. It is the only error that should
// interrupt the happy path; callers prompt the user and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
