package storeapi

import (
	"errors"
	"fmt"
)

// ErrTransport is matched by every failed call, whether the request never
// completed or the server answered with a non-2xx status.
var ErrTransport = errors.New("store api request failed")

type Error struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Message != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	default:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	}
}

func (e *Error) Is(target error) bool {
	return target == ErrTransport
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ServerMessage returns the optional "message" field of an error response.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
