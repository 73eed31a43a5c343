// services/notification_service.go
package services

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"citaflow-backend/models"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type NotificationService struct {
	db      *gorm.DB
	client  *twilio.RestClient
	enabled bool
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &NotificationService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		enabled: accountSid != "" && authToken != "",
	}
}

// BuildMessage renders the customer-facing text for a transition event.
func BuildMessage(appointment *models.Appointment, serviceTitle, event string) string {
	switch event {
	case "confirmed":
		return fmt.Sprintf("Hola %s, tu cita de %s el %s a las %s fue confirmada. ¡Te esperamos!",
			appointment.CustomerName, serviceTitle, appointment.AppointmentDate, appointment.AppointmentTime)
	case "cancelled":
		msg := fmt.Sprintf("Hola %s, lamentamos informarte que tu cita de %s el %s a las %s fue cancelada.",
			appointment.CustomerName, serviceTitle, appointment.AppointmentDate, appointment.AppointmentTime)
		if appointment.Notes != "" {
			msg += " Motivo: " + appointment.Notes
		}
		return msg
	case "uncancelled":
		return fmt.Sprintf("Hola %s, tu cita de %s el %s a las %s fue reactivada y está pendiente de confirmación.",
			appointment.CustomerName, serviceTitle, appointment.AppointmentDate, appointment.AppointmentTime)
	case "reminder":
		return fmt.Sprintf("Hola %s, te recordamos tu cita de %s mañana %s a las %s.",
			appointment.CustomerName, serviceTitle, appointment.AppointmentDate, appointment.AppointmentTime)
	default:
		return ""
	}
}

// WhatsAppURL builds a wa.me link the owner can open to message the customer.
func WhatsAppURL(appointment *models.Appointment, serviceTitle, event string) string {
	phone := strings.TrimPrefix(appointment.CustomerPhone, "+")
	phone = strings.ReplaceAll(phone, " ", "")
	message := BuildMessage(appointment, serviceTitle, event)
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(message)
}

// NotifyTransition dispatches a best-effort message for a status change and
// records the attempt. Failures are logged and swallowed; the status change
// is the source of truth.
func (s *NotificationService) NotifyTransition(tenant *models.Tenant, appointment *models.Appointment, serviceTitle, event string) {
	message := BuildMessage(appointment, serviceTitle, event)
	if message == "" {
		return
	}

	entry := models.NotificationLog{
		TenantID:      tenant.ID,
		AppointmentID: appointment.ID,
		Event:         event,
		Message:       message,
		SentAt:        time.Now(),
	}

	if !s.enabled || !tenant.WhatsAppNotifications {
		entry.Channel = "link"
		entry.Status = "skipped"
		s.save(&entry)
		return
	}

	// WhatsApp for E.164 numbers, plain SMS otherwise
	to := appointment.CustomerPhone
	channel := "sms"
	if strings.HasPrefix(appointment.CustomerPhone, "+") {
		to = "whatsapp:" + appointment.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)
	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	entry.Channel = channel
	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send %s notification for appointment %s: %v", event, appointment.ID, err)
		entry.Status = "failed"
		entry.ErrorMessage = err.Error()
	} else {
		entry.Status = "sent"
		if resp.Sid != nil {
			log.Printf("Notification sent for appointment %s, SID: %s", appointment.ID, *resp.Sid)
		}
	}

	s.save(&entry)
}

func (s *NotificationService) save(entry *models.NotificationLog) {
	if err := s.db.Create(entry).Error; err != nil {
		log.Printf("Failed to log notification for appointment %s: %v", entry.AppointmentID, err)
	}
}
