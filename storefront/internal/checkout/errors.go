package checkout

import (
	"errors"

	"bytebite/storefront/internal/menu"
)

const (
	ReasonEmptyCart    = "empty cart"
	ReasonMissingField = "missing field"
	ReasonUnknownArea  = "unknown area"
)

var (
	ErrInvalidTransition    = errors.New("checkout: operation not allowed in current state")
	ErrSubmissionInProgress = errors.New("checkout: order submission already in progress")
)

type FetchError = menu.FetchError

// ValidationError is returned before any network call when input is rejected.
type ValidationError struct {
	Reason string
	Field  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return e.Reason + ": " + e.Field
	}
	return e.Reason
}

// SubmissionError carries the message the order service returned, verbatim.
type SubmissionError struct {
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// UserMessage turns a controller error into the text shown to the customer.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	var fetchErr *FetchError
	var submissionErr *SubmissionError

	switch {
	case errors.As(err, &validationErr):
		switch validationErr.Reason {
		case ReasonEmptyCart:
			return "Please select at least one meal."
		case ReasonMissingField:
			return "Please fill in all required fields."
		case ReasonUnknownArea:
			return "Please select a delivery area."
		}
		return "Please check your input."
	case errors.As(err, &fetchErr):
		return "Failed to load meals. Please try again."
	case errors.As(err, &submissionErr):
		if submissionErr.Message != "" {
			return submissionErr.Message
		}
		return "Failed to submit order. Please try again."
	case errors.Is(err, ErrSubmissionInProgress):
		return "Your order is already being submitted."
	case errors.Is(err, ErrInvalidTransition):
		return "That action is not available right now."
	}
	return "Something went wrong. Please try again."
}
