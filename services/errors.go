package services

import (
	"errors"
	"fmt"

	"ocr-translator/internal/config"
	"ocr-translator/models"
)

// ErrSubmissionInFlight is returned when a submit arrives while another
// translation is still pending. The new intent is dropped, not queued.
var ErrSubmissionInFlight = errors.New("a translation is already in progress")

// TransportError is a network failure or a non-success status from the
// remote service. Status is 0 when no response was received.
type TransportError struct {
	Op     string
	Status int
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Detail != "":
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Detail)
	case e.Status != 0:
		return fmt.Sprintf("%s: status %d", e.Op, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": transport failure"
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means a response arrived but its body was not what the
// contract promises.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: unexpected response body: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// FailureMessage collapses any submission error into the string shown to
// the user: the server's detail, then the status, then a generic message.
func FailureMessage(err error) string {
	var vErr *models.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Message
	}

	var tErr *TransportError
	if errors.As(err, &tErr) {
		if tErr.Detail != "" {
			return tErr.Detail
		}
		if tErr.Status != 0 {
			return fmt.Sprintf(config.MsgTranslationStatus, tErr.Status)
		}
	}

	return config.MsgUnexpectedError
}
