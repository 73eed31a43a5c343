package services

import (
	"strings"
	"testing"

	"citaflow-backend/models"
)

func TestBuildMessage(t *testing.T) {
	appointment := &models.Appointment{
		CustomerName:    "Ana",
		AppointmentDate: "2026-03-09",
		AppointmentTime: "14:00",
	}

	for _, event := range []string{"confirmed", "cancelled", "uncancelled", "reminder"} {
		msg := BuildMessage(appointment, "Corte de pelo", event)
		if msg == "" {
			t.Errorf("expected a message for event %q", event)
			continue
		}
		for _, want := range []string{"Ana", "Corte de pelo", "2026-03-09", "14:00"} {
			if !strings.Contains(msg, want) {
				t.Errorf("%s message missing %q: %s", event, want, msg)
			}
		}
	}

	if got := BuildMessage(appointment, "Corte", "unknown"); got != "" {
		t.Errorf("unknown event should produce no message, got %q", got)
	}
}

func TestBuildMessage_CancellationIncludesReason(t *testing.T) {
	appointment := &models.Appointment{
		CustomerName:    "Ana",
		AppointmentDate: "2026-03-09",
		AppointmentTime: "14:00",
		Notes:           "cierre por feriado",
	}
	msg := BuildMessage(appointment, "Corte", "cancelled")
	if !strings.Contains(msg, "cierre por feriado") {
		t.Errorf("cancellation message missing reason: %s", msg)
	}
}

func TestWhatsAppURL(t *testing.T) {
	appointment := &models.Appointment{
		CustomerName:    "Ana",
		CustomerPhone:   "+54 911 2233 4455",
		AppointmentDate: "2026-03-09",
		AppointmentTime: "14:00",
	}

	url := WhatsAppURL(appointment, "Corte", "confirmed")
	if !strings.HasPrefix(url, "https://wa.me/5491122334455?text=") {
		t.Errorf("unexpected wa.me link: %s", url)
	}
	if strings.Contains(url, " ") {
		t.Errorf("message must be URL encoded: %s", url)
	}
}
