package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateICS(t *testing.T) {
	start := time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	ics := GenerateICS(ICSAppointmentData{
		UID:           "abc123@citaflow",
		Title:         "Corte de pelo - Studio Luna",
		Description:   "Cita de Ana para Corte de pelo",
		Location:      "Av. Siempre Viva 742",
		StartDate:     start,
		EndDate:       start.Add(30 * time.Minute),
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
	}, now)

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"UID:abc123@citaflow",
		"DTSTAMP:20260301T103000Z",
		"DTSTART:20260309T140000Z",
		"DTEND:20260309T143000Z",
		"SUMMARY:Corte de pelo - Studio Luna",
		"LOCATION:Av. Siempre Viva 742",
		"ATTENDEE;CN=Ana;RSVP=TRUE:mailto:ana@example.com",
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"END:VCALENDAR",
	} {
		if !strings.Contains(ics, want) {
			t.Errorf("ICS missing %q:\n%s", want, ics)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS lines must be CRLF separated")
	}
}

func TestGenerateICS_EscapesSpecialCharacters(t *testing.T) {
	ics := GenerateICS(ICSAppointmentData{
		UID:         "x@citaflow",
		Title:       "Corte; lavado, y más\\",
		Description: "línea uno\nlínea dos",
		StartDate:   time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
	}, time.Now())

	if !strings.Contains(ics, `SUMMARY:Corte\; lavado\, y más\\`) {
		t.Errorf("summary not escaped:\n%s", ics)
	}
	if !strings.Contains(ics, `DESCRIPTION:línea uno\nlínea dos`) {
		t.Errorf("description newline not escaped:\n%s", ics)
	}
}

func TestGenerateICS_OptionalFieldsOmitted(t *testing.T) {
	ics := GenerateICS(ICSAppointmentData{
		UID:       "x@citaflow",
		Title:     "Corte",
		StartDate: time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
	}, time.Now())

	if strings.Contains(ics, "LOCATION") {
		t.Error("LOCATION should be omitted when empty")
	}
	if strings.Contains(ics, "ATTENDEE") {
		t.Error("ATTENDEE should be omitted without a customer email")
	}
}

func TestGenerateICS_Deterministic(t *testing.T) {
	data := ICSAppointmentData{
		UID:       "same@citaflow",
		Title:     "Corte",
		StartDate: time.Date(2026, 3, 9, 14, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 9, 15, 0, 0, 0, time.UTC),
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if GenerateICS(data, now) != GenerateICS(data, now) {
		t.Error("same input must produce the same document")
	}
}
