package errors

import "fmt"

// UnauthorizedError indicates the Apollo API rejected a call for lack of
// privilege. Several endpoints require a master API key; a regular key
// gets a 401/403 back. This is fatal for the whole call and must never be
// reported as a per-entity not-found outcome.
type UnauthorizedError struct {
	message string
}

func (v *UnauthorizedError) Error() string {
	return v.message
}

func UnauthorizedErrorf(format string, args ...interface{}) *UnauthorizedError {
	return &UnauthorizedError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &UnauthorizedError{}
