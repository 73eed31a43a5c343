// services/availability_service.go
package services

import (
	"errors"
	"fmt"

	"citaflow-backend/models"
	"citaflow-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultSlotMinutes is the slot length used when neither the service nor
// the chosen variant defines a duration.
const DefaultSlotMinutes = 60

// Slot is one bookable start time for a day.
type Slot struct {
	Time              string `json:"time"`
	RemainingCapacity int    `json:"remaining_capacity"`
}

// SlotCounter reports the number of active appointments holding an exact
// (service, date, time) slot.
type SlotCounter func(serviceID uuid.UUID, date, clock string) (int64, error)

type AvailabilityService struct {
	db      *gorm.DB
	countAt SlotCounter
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	s := &AvailabilityService{db: db}
	s.countAt = func(serviceID uuid.UUID, date, clock string) (int64, error) {
		return CountActiveAtSlot(s.db, serviceID, date, clock)
	}
	return s
}

// EffectiveDuration picks the slot length: variant override, then service
// duration, then the default.
func EffectiveDuration(service *models.Service, variant *models.ServiceVariant) int {
	if variant != nil && variant.DurationMinutes != nil && *variant.DurationMinutes > 0 {
		return *variant.DurationMinutes
	}
	if service.DurationMinutes != nil && *service.DurationMinutes > 0 {
		return *service.DurationMinutes
	}
	return DefaultSlotMinutes
}

// Resolve computes the ordered bookable slots for a service on one date.
// An empty list is a normal outcome, not an error.
func (s *AvailabilityService) Resolve(serviceID uuid.UUID, date string, durationMinutes int) ([]Slot, error) {
	if !utils.ValidateDate(date) {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}

	var service models.Service
	if err := s.db.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidService
		}
		return nil, err
	}
	if !service.IsActive {
		return nil, ErrInvalidService
	}

	if durationMinutes <= 0 {
		durationMinutes = EffectiveDuration(&service, nil)
	}

	dayOfWeek, err := utils.DayOfWeek(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}

	var schedules []models.AvailabilitySchedule
	if err := s.db.Where("service_id = ? AND day_of_week = ? AND is_active = ?", serviceID, dayOfWeek, true).
		Find(&schedules).Error; err != nil {
		return nil, err
	}

	var exceptions []models.ScheduleException
	if err := s.db.Where("tenant_id = ? AND exception_date = ? AND (service_id IS NULL OR service_id = ?)",
		service.TenantID, date, serviceID).Find(&exceptions).Error; err != nil {
		return nil, err
	}

	return ResolveSlots(&service, schedules, exceptions, date, durationMinutes, s.countAt)
}

// ResolveSlots assembles the bookable slots from already loaded rows.
// Exceptions that do not apply to the service and date are ignored, and a
// slot whose active bookings have reached the service limit is excluded.
func ResolveSlots(service *models.Service, schedules []models.AvailabilitySchedule, exceptions []models.ScheduleException, date string, durationMinutes int, countAt SlotCounter) ([]Slot, error) {
	matching := make([]models.ScheduleException, 0, len(exceptions))
	for _, exc := range exceptions {
		if exc.AppliesTo(service.ID, date) {
			matching = append(matching, exc)
		}
	}

	open, err := OpenRanges(schedules, matching, durationMinutes)
	if err != nil {
		return nil, err
	}

	slots := []Slot{}
	for _, r := range open {
		for _, start := range utils.SlotStarts(r, durationMinutes) {
			clock := utils.FormatClock(start)
			count, err := countAt(service.ID, date, clock)
			if err != nil {
				return nil, err
			}
			remaining := service.MaxSimultaneousBookings - int(count)
			if remaining > 0 {
				slots = append(slots, Slot{Time: clock, RemainingCapacity: remaining})
			}
		}
	}
	return slots, nil
}

// OpenRanges merges the day's schedule blocks into a union of windows and
// subtracts every matching exception. A full-day exception empties the day.
func OpenRanges(schedules []models.AvailabilitySchedule, exceptions []models.ScheduleException, durationMinutes int) ([]utils.TimeRange, error) {
	windows := make([]utils.TimeRange, 0, len(schedules))
	for _, sched := range schedules {
		start, err := utils.ParseClock(sched.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := utils.ParseClock(sched.EndTime)
		if err != nil {
			return nil, err
		}
		windows = append(windows, utils.TimeRange{Start: start, End: end})
	}

	fullDay, blocks, err := ExceptionBlocks(exceptions, durationMinutes)
	if err != nil {
		return nil, err
	}
	if fullDay {
		return nil, nil
	}

	return utils.SubtractRanges(utils.MergeRanges(windows), blocks), nil
}

// ExceptionBlocks partitions exceptions into a full-day short circuit and the
// partial blocked intervals. An exception with a start but no end blocks a
// single slot of the effective duration.
func ExceptionBlocks(exceptions []models.ScheduleException, durationMinutes int) (fullDay bool, blocks []utils.TimeRange, err error) {
	for _, exc := range exceptions {
		if exc.StartTime == nil {
			return true, nil, nil
		}
		start, err := utils.ParseClock(*exc.StartTime)
		if err != nil {
			return false, nil, err
		}
		end := start + durationMinutes
		if exc.EndTime != nil {
			end, err = utils.ParseClock(*exc.EndTime)
			if err != nil {
				return false, nil, err
			}
		}
		blocks = append(blocks, utils.TimeRange{Start: start, End: end})
	}
	return false, blocks, nil
}

// CountActiveAtSlot counts pending and confirmed appointments at an exact
// (service, date, time) triple. Completed appointments free their slot.
func CountActiveAtSlot(db *gorm.DB, serviceID uuid.UUID, date, clock string) (int64, error) {
	var count int64
	err := db.Model(&models.Appointment{}).
		Where("service_id = ? AND appointment_date = ? AND appointment_time = ? AND status IN ?",
			serviceID, date, clock, models.ActiveStatuses).
		Count(&count).Error
	return count, err
}
