// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"citaflow-backend/models"
	"citaflow-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// allowedTransitions is the appointment lifecycle. completed is terminal;
// cancelled can only go back to pending (the audited un-cancel path).
var allowedTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted},
	models.StatusConfirmed: {models.StatusCancelled, models.StatusCompleted},
	models.StatusCancelled: {models.StatusPending},
	models.StatusCompleted: {},
}

// CanTransition reports whether a status change is permitted.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition checks a status change, including the mandatory reason
// on the un-cancel path.
func ValidateTransition(from, to, reason string) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	if from == models.StatusCancelled && to == models.StatusPending && strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}
	return nil
}

// TransitionEvent names the notification event a transition fires, or ""
// when the transition is silent.
func TransitionEvent(from, to string) string {
	switch {
	case to == models.StatusConfirmed:
		return "confirmed"
	case to == models.StatusCancelled:
		return "cancelled"
	case from == models.StatusCancelled && to == models.StatusPending:
		return "uncancelled"
	default:
		return ""
	}
}

// CheckSlotCapacity returns ErrSlotExhausted once a slot's active bookings
// have reached the service limit.
func CheckSlotCapacity(maxSimultaneous int, active int64) error {
	if active >= int64(maxSimultaneous) {
		return ErrSlotExhausted
	}
	return nil
}

type BookingService struct {
	db            *gorm.DB
	availability  *AvailabilityService
	notifications *NotificationService
}

func NewBookingService(db *gorm.DB, availability *AvailabilityService, notifications *NotificationService) *BookingService {
	return &BookingService{
		db:            db,
		availability:  availability,
		notifications: notifications,
	}
}

type CreateBookingInput struct {
	ServiceID     uuid.UUID
	VariantID     *uuid.UUID
	Date          string
	Time          string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PaymentMethod string
}

// CreateAppointment books a slot. The resolver re-validates that the slot is
// still open, then the capacity check is repeated inside a transaction with
// the service row locked, so two simultaneous bookers cannot both pass it.
func (s *BookingService) CreateAppointment(input CreateBookingInput) (*models.Appointment, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if !utils.ValidatePhone(input.CustomerPhone) {
		return nil, fmt.Errorf("%w: invalid customer phone", ErrValidation)
	}
	if !utils.ValidateDate(input.Date) {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, input.Date)
	}
	if !utils.ValidateClock(input.Time) {
		return nil, fmt.Errorf("%w: invalid time %q", ErrValidation, input.Time)
	}

	var service models.Service
	if err := s.db.First(&service, "id = ?", input.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidService
		}
		return nil, err
	}
	if !service.IsActive {
		return nil, ErrInvalidService
	}

	var variant *models.ServiceVariant
	if input.VariantID != nil {
		var v models.ServiceVariant
		if err := s.db.First(&v, "id = ? AND service_id = ?", *input.VariantID, input.ServiceID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: unknown variant", ErrValidation)
			}
			return nil, err
		}
		variant = &v
	}

	duration := EffectiveDuration(&service, variant)

	// Best-effort snapshot; the authoritative check happens in the transaction.
	slots, err := s.availability.Resolve(input.ServiceID, input.Date, duration)
	if err != nil {
		return nil, err
	}
	open := false
	for _, slot := range slots {
		if slot.Time == input.Time {
			open = true
			break
		}
	}
	if !open {
		return nil, ErrSlotUnavailable
	}

	appointment := models.Appointment{
		TenantID:        service.TenantID,
		ServiceID:       service.ID,
		VariantID:       input.VariantID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:   strings.TrimSpace(input.CustomerEmail),
		AppointmentDate: input.Date,
		AppointmentTime: input.Time,
		Status:          models.StatusPending,
		PaymentMethod:   input.PaymentMethod,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Lock the service row so concurrent bookings for the same service
		// serialize; the recount below is then race-free.
		var locked models.Service
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "id = ?", service.ID).Error; err != nil {
			return err
		}

		count, err := CountActiveAtSlot(tx, service.ID, input.Date, input.Time)
		if err != nil {
			return err
		}
		if err := CheckSlotCapacity(locked.MaxSimultaneousBookings, count); err != nil {
			return err
		}

		return tx.Create(&appointment).Error
	})
	if err != nil {
		return nil, err
	}

	return &appointment, nil
}

// UpdateStatus moves an appointment through the state machine and fires the
// transition's notification. The update is a compare-and-set on (id, status),
// so a concurrent transition makes the later writer fail instead of silently
// overwriting.
func (s *BookingService) UpdateStatus(appointmentID uuid.UUID, newStatus, notes string) (*models.Appointment, string, error) {
	var appointment models.Appointment
	if err := s.db.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		return nil, "", err
	}

	from := appointment.Status
	if err := ValidateTransition(from, newStatus, notes); err != nil {
		return nil, "", err
	}

	updates := map[string]interface{}{"status": newStatus}
	if strings.TrimSpace(notes) != "" {
		updates["notes"] = strings.TrimSpace(notes)
	}

	result := s.db.Model(&models.Appointment{}).
		Where("id = ? AND status = ?", appointmentID, from).
		Updates(updates)
	if result.Error != nil {
		return nil, "", result.Error
	}
	if result.RowsAffected == 0 {
		// Lost a concurrent transition race
		return nil, "", ErrInvalidTransition
	}

	if err := s.db.First(&appointment, "id = ?", appointmentID).Error; err != nil {
		return nil, "", err
	}

	event := TransitionEvent(from, newStatus)
	whatsappURL := ""
	if event != "" {
		var service models.Service
		serviceTitle := ""
		if err := s.db.First(&service, "id = ?", appointment.ServiceID).Error; err == nil {
			serviceTitle = service.Title
		}

		whatsappURL = WhatsAppURL(&appointment, serviceTitle, event)

		var tenant models.Tenant
		if err := s.db.First(&tenant, "id = ?", appointment.TenantID).Error; err != nil {
			log.Printf("Skipping %s notification for appointment %s: %v", event, appointment.ID, err)
		} else {
			s.notifications.NotifyTransition(&tenant, &appointment, serviceTitle, event)
		}
	}

	return &appointment, whatsappURL, nil
}
