package models

import "time"

// OutcomeStatus tags the variant held by an Outcome.
type OutcomeStatus string

const (
	StatusIdle    OutcomeStatus = "idle"
	StatusPending OutcomeStatus = "pending"
	StatusSuccess OutcomeStatus = "success"
	StatusFailure OutcomeStatus = "failure"
)

// Outcome is the submission controller's externally observable state:
// exactly one of Idle, Pending, Success(Result) or Failure(Message).
// Result is set only for Success and Message only for Failure.
type Outcome struct {
	Status    OutcomeStatus
	AttemptID string
	Result    *TranslationResult
	Message   string
	At        time.Time
}

// IdleOutcome is the state before any submission.
func IdleOutcome() Outcome {
	return Outcome{Status: StatusIdle}
}

// PendingOutcome marks a round trip in flight. It clears any earlier result or error.
func PendingOutcome(attemptID string) Outcome {
	return Outcome{Status: StatusPending, AttemptID: attemptID, At: time.Now()}
}

// SuccessOutcome wraps a translation result.
func SuccessOutcome(attemptID string, result TranslationResult) Outcome {
	return Outcome{Status: StatusSuccess, AttemptID: attemptID, Result: &result, At: time.Now()}
}

// FailureOutcome carries a display message. attemptID is empty for failures
// that never reached the transport.
func FailureOutcome(attemptID, message string) Outcome {
	return Outcome{Status: StatusFailure, AttemptID: attemptID, Message: message, At: time.Now()}
}

func (o Outcome) IsPending() bool { return o.Status == StatusPending }
func (o Outcome) IsSuccess() bool { return o.Status == StatusSuccess && o.Result != nil }
func (o Outcome) IsFailure() bool { return o.Status == StatusFailure }

// StatusText returns a short label for status bars and CLI progress.
func (o Outcome) StatusText() string {
	switch o.Status {
	case StatusIdle:
		return "Ready to translate"
	case StatusPending:
		return "Translating..."
	case StatusSuccess:
		return "Completed!"
	case StatusFailure:
		if o.Message != "" {
			return "Failed: " + o.Message
		}
		return "Failed"
	default:
		return string(o.Status)
	}
}

// StatusIcon returns an emoji icon representing the outcome
func (o Outcome) StatusIcon() string {
	switch o.Status {
	case StatusIdle:
		return "⏳"
	case StatusPending:
		return "🔄"
	case StatusSuccess:
		return "✅"
	case StatusFailure:
		return "❌"
	default:
		return "📄"
	}
}
