package aibackend

import (
	"errors"
	"fmt"
)

var ErrServerUnreachable = errors.New("unable to connect to AI server")

// StatusError is returned when the AI server answers with a non 2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("AI server responded with status: %d", e.StatusCode)
}
