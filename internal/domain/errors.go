package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the portal.
var (
	ErrInterviewNotFound    = errors.New("interview not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrRemoteUnavailable    = errors.New("remote calendar unavailable")
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// RemoteCreateFailure reports that the calendar did not create the requested event.
// Callers decide whether to retry.
type RemoteCreateFailure struct {
	InterviewID string
	Err         error
}

func (e *RemoteCreateFailure) Error() string {
	if e.InterviewID == "" {
		return fmt.Sprintf("create calendar event: %v", e.Err)
	}
	return fmt.Sprintf("create calendar event for interview %s: %v", e.InterviewID, e.Err)
}

func (e *RemoteCreateFailure) Unwrap() error {
	return e.Err
}
