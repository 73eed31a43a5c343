package services

import (
	"errors"
	"testing"

	"citaflow-backend/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.StatusPending, models.StatusConfirmed, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPending, models.StatusCompleted, true}, // direct completion is valid
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusCancelled, true},
		{models.StatusCancelled, models.StatusPending, true}, // un-cancel
		{models.StatusCancelled, models.StatusConfirmed, false},
		{models.StatusCancelled, models.StatusCompleted, false},
		{models.StatusCompleted, models.StatusPending, false},
		{models.StatusCompleted, models.StatusConfirmed, false},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusConfirmed, models.StatusPending, false},
		{"unknown", models.StatusPending, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidateTransition_UncancelRequiresReason(t *testing.T) {
	err := ValidateTransition(models.StatusCancelled, models.StatusPending, "")
	if !errors.Is(err, ErrReasonRequired) {
		t.Errorf("expected ErrReasonRequired, got %v", err)
	}

	err = ValidateTransition(models.StatusCancelled, models.StatusPending, "   ")
	if !errors.Is(err, ErrReasonRequired) {
		t.Errorf("whitespace-only reason: expected ErrReasonRequired, got %v", err)
	}

	if err := ValidateTransition(models.StatusCancelled, models.StatusPending, "customer called back"); err != nil {
		t.Errorf("expected nil with a reason, got %v", err)
	}
}

func TestValidateTransition_CompletedIsTerminal(t *testing.T) {
	for _, to := range []string{models.StatusPending, models.StatusConfirmed, models.StatusCancelled} {
		err := ValidateTransition(models.StatusCompleted, to, "reason")
		if !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("completed -> %s: expected ErrInvalidTransition, got %v", to, err)
		}
	}
}

func TestTransitionEvent(t *testing.T) {
	tests := []struct {
		from, to string
		want     string
	}{
		{models.StatusPending, models.StatusConfirmed, "confirmed"},
		{models.StatusPending, models.StatusCancelled, "cancelled"},
		{models.StatusConfirmed, models.StatusCancelled, "cancelled"},
		{models.StatusCancelled, models.StatusPending, "uncancelled"},
		{models.StatusPending, models.StatusCompleted, ""},
		{models.StatusConfirmed, models.StatusCompleted, ""},
	}
	for _, tt := range tests {
		if got := TransitionEvent(tt.from, tt.to); got != tt.want {
			t.Errorf("TransitionEvent(%s, %s) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
