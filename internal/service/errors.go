package service

import (
	"errors"
	"fmt"
)

var (
	ErrPoolEmpty           = errors.New("no questions available for this trade and year")
	ErrPaperNotFound       = errors.New("paper not found")
	ErrDuplicateAttempt    = errors.New("paper already attempted by this user")
	ErrStoreUnavailable    = errors.New("store unavailable")
	ErrPageLimitExceeded   = errors.New("question pool exceeds page limit")
	ErrInvalidPaperCode    = errors.New("invalid paper code")
	ErrNotPaperOwner       = errors.New("paper belongs to another user")
	ErrAlreadySubmitted    = errors.New("paper already submitted")
	ErrTradeNotFound       = errors.New("trade not found")
	ErrQuestionNotFound    = errors.New("question not found")
	ErrDraftingUnavailable = errors.New("question drafting is not configured")
	ErrCodeCollision       = errors.New("could not allocate a unique paper code")
)

// ValidationError reports a request the service refused to act on.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func newValidationError(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// storeError wraps a repository failure so callers can match ErrStoreUnavailable
// while keeping the underlying message.
func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
