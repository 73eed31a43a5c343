// services/reminder_service.go
package services

import (
	"log"
	"time"

	"citaflow-backend/models"
	"citaflow-backend/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type ReminderService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewReminderService(db *gorm.DB, notifications *NotificationService) *ReminderService {
	return &ReminderService{db: db, notifications: notifications}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders messages every customer with a confirmed appointment
// for tomorrow. Best-effort; a failed send never blocks the rest.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily reminder processing...")

	// Anchor on midnight so a late cron fire still targets the same window
	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1).Format("2006-01-02")

	var appointments []models.Appointment
	if err := s.db.Where("appointment_date = ? AND status = ?", tomorrow, models.StatusConfirmed).
		Find(&appointments).Error; err != nil {
		log.Printf("Failed to fetch appointments for %s: %v", tomorrow, err)
		return
	}

	for i := range appointments {
		appointment := &appointments[i]

		var tenant models.Tenant
		if err := s.db.First(&tenant, "id = ?", appointment.TenantID).Error; err != nil {
			log.Printf("Appointment %s: failed to load tenant: %v", appointment.ID, err)
			continue
		}

		serviceTitle := ""
		var service models.Service
		if err := s.db.First(&service, "id = ?", appointment.ServiceID).Error; err == nil {
			serviceTitle = service.Title
		}

		s.notifications.NotifyTransition(&tenant, appointment, serviceTitle, "reminder")
	}

	log.Println("Daily reminder processing completed")
}
