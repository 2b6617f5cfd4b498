// Package apperr classifies failures so the HTTP layer can map them without
// knowing which component produced them.
package apperr

import (
	"errors"
	"fmt"
)

// Kind is the caller-visible class of a failure.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnauthorized:
		return "unauthorized"
	case KindStore:
		return "store"
	default:
		return "unknown"
	}
}

// Error is a classified failure. Two errors match under errors.Is when their codes match.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrValidation = &Error{Kind: KindValidation, Code: "VALIDATION_ERROR", Message: "invalid request"}

	ErrNoScheduleConfigured = &Error{Kind: KindValidation, Code: "NO_SCHEDULE_CONFIGURED", Message: "The restaurant has no opening hours for this day."}
	ErrClosedAllDay         = &Error{Kind: KindValidation, Code: "CLOSED_ALL_DAY", Message: "The restaurant is closed on this day."}
	ErrOutsideHours         = &Error{Kind: KindValidation, Code: "OUTSIDE_HOURS", Message: "The requested time is outside opening hours."}

	ErrSlotFull        = &Error{Kind: KindConflict, Code: "SLOT_FULL", Message: "This timeslot is fully booked. Please choose a different time."}
	ErrDuplicateUserID = &Error{Kind: KindConflict, Code: "DUPLICATE_USER_ID", Message: "A restaurant with this userid already exists."}

	ErrInvalidCredentials = &Error{Kind: KindUnauthorized, Code: "INVALID_CREDENTIALS", Message: "Invalid userid or password."}

	ErrRestaurantNotFound  = &Error{Kind: KindNotFound, Code: "RESTAURANT_NOT_FOUND", Message: "Restaurant not found."}
	ErrReservationNotFound = &Error{Kind: KindNotFound, Code: "RESERVATION_NOT_FOUND", Message: "Reservation not found."}
	ErrQueueEntryNotFound  = &Error{Kind: KindNotFound, Code: "QUEUE_ENTRY_NOT_FOUND", Message: "Queue entry not found."}

	ErrStore = &Error{Kind: KindStore, Code: "DB_ERROR", Message: "storage failure"}
)

// Validation reports a missing or malformed field.
func Validation(field, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if field != "" {
		msg = field + ": " + msg
	}
	return &Error{Kind: KindValidation, Code: ErrValidation.Code, Message: msg}
}

// Store wraps an underlying storage failure. The message is passed through.
func Store(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindStore, Code: ErrStore.Code, Message: op, Err: err}
}

// KindOf returns the kind of err, KindStore for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}
