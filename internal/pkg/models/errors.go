package models

import (
	"errors"
	"fmt"
)

var (
	// ErrFixNotFound is returned when a device has never reported.
	ErrFixNotFound = errors.New("fix not found")

	// ErrStorageUnavailable indicates the backing store is unreachable.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidScheduleTime indicates a stop time that does not parse as HH:MM.
	ErrInvalidScheduleTime = errors.New("invalid schedule time")

	// ErrNotificationPermissionDenied indicates the notification
	// facility refused permission to deliver alerts.
	ErrNotificationPermissionDenied = errors.New("notification permission denied")
)

// InvalidFixError rejects a malformed telemetry payload. Missing
// distinguishes an absent required field from one that fails to parse.
type InvalidFixError struct {
	Field   string
	Missing bool
}

func (e *InvalidFixError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing required field: %s", e.Field)
	}
	return fmt.Sprintf("invalid field: %s", e.Field)
}

// NewMissingFieldError reports a required field that was not supplied.
func NewMissingFieldError(field string) *InvalidFixError {
	return &InvalidFixError{Field: field, Missing: true}
}

// NewInvalidFieldError reports a field that failed to parse.
func NewInvalidFieldError(field string) *InvalidFixError {
	return &InvalidFixError{Field: field}
}

// SchedulingError indicates the notification facility accepted the
// permission check but failed to register the trigger.
type SchedulingError struct {
	Reason string
	Err    error
}

func (e *SchedulingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scheduling failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("scheduling failed: %s", e.Reason)
}

func (e *SchedulingError) Unwrap() error {
	return e.Err
}
