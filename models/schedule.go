package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilitySchedule is one recurring weekly block for a service.
// A service may have several non-contiguous blocks on the same day.
type AvailabilitySchedule struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	DayOfWeek int    `gorm:"not null"` // 0=Sunday .. 6=Saturday
	StartTime string `gorm:"type:varchar(5);not null"` // "HH:MM"
	EndTime   string `gorm:"type:varchar(5);not null"` // "HH:MM", strictly after StartTime
	IsActive  bool   `gorm:"default:true"`

	gorm.Model
}

func (s *AvailabilitySchedule) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
