package api

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired is a 401: the session is missing or expired and
	// the user has to go through the login page again.
	ErrAuthRequired = errors.New("authentication required")

	// ErrForbidden is a 403: the server refused the action, which for
	// this API means deleting somebody else's sentence.
	ErrForbidden = errors.New("forbidden")
)

// ServerError is any other non-2xx answer. Message carries the text
// from the server's own {"error": ...} body verbatim, or a generic
// fallback when the body has none.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Message returns the text shown to the user for a failed request.
func Message(err error) string {
	var se *ServerError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrAuthRequired):
		return "you need to log in first"
	case errors.Is(err, ErrForbidden):
		return "only the author can delete a sentence"
	case errors.As(err, &se):
		return se.Message
	}
	return err.Error()
}
