// services/errors.go
package services

import "errors"

var (
	// ErrValidation marks malformed input; no partial state change happens.
	ErrValidation = errors.New("validation error")

	// ErrInvalidService is returned by the resolver when the target service
	// is missing or inactive.
	ErrInvalidService = errors.New("service is inactive or does not exist")

	// ErrSlotUnavailable means the requested time is not one of the
	// currently bookable slots for that day.
	ErrSlotUnavailable = errors.New("requested slot is not available")

	// ErrSlotExhausted means the capacity re-check inside the booking
	// transaction lost the race; the caller should re-resolve and retry
	// with a different slot.
	ErrSlotExhausted = errors.New("slot capacity exhausted")

	// ErrInvalidTransition rejects a status change not permitted from the
	// appointment's current state.
	ErrInvalidTransition = errors.New("status transition not permitted")

	// ErrReasonRequired rejects restoring a cancelled appointment without
	// a reason.
	ErrReasonRequired = errors.New("a reason is required to restore a cancelled appointment")
)
