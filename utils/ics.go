// utils/ics.go
package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ICSAppointmentData struct {
	UID           string
	Title         string
	Description   string
	Location      string
	StartDate     time.Time
	EndDate       time.Time
	CustomerName  string
	CustomerEmail string
}

// GenerateICS renders one VEVENT as an RFC 5545 calendar document.
// Pure text generation: same input, same output, safe to re-derive any time.
func GenerateICS(data ICSAppointmentData, now time.Time) string {
	uid := data.UID
	if uid == "" {
		uid = uuid.NewString() + "@citaflow"
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//CitaFlow//ES",
		"CALSCALE:GREGORIAN",
		"METHOD:REQUEST",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + formatICSDate(now),
		"DTSTART:" + formatICSDate(data.StartDate),
		"DTEND:" + formatICSDate(data.EndDate),
		"SUMMARY:" + escapeICSText(data.Title),
		"DESCRIPTION:" + escapeICSText(data.Description),
	}
	if data.Location != "" {
		lines = append(lines, "LOCATION:"+escapeICSText(data.Location))
	}
	if data.CustomerEmail != "" {
		lines = append(lines, "ATTENDEE;CN="+escapeICSText(data.CustomerName)+";RSVP=TRUE:mailto:"+escapeICSText(data.CustomerEmail))
	}
	lines = append(lines,
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"END:VEVENT",
		"END:VCALENDAR",
	)

	return strings.Join(lines, "\r\n")
}

// formatICSDate renders a UTC timestamp as YYYYMMDDTHHMMSSZ.
func formatICSDate(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICSText escapes backslash, comma, semicolon and newline per RFC 5545.
func escapeICSText(text string) string {
	text = strings.ReplaceAll(text, "\\", "\\\\")
	text = strings.ReplaceAll(text, ",", "\\,")
	text = strings.ReplaceAll(text, ";", "\\;")
	text = strings.ReplaceAll(text, "\n", "\\n")
	return text
}
