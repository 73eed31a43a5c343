package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null"`

	Title       string `gorm:"not null"`
	Description string
	Price       *float64 `gorm:"type:decimal(10,2)"`
	// DurationMinutes nil means the resolver falls back to its default slot length
	DurationMinutes         *int
	MaxSimultaneousBookings int  `gorm:"default:1"`
	IsActive                bool `gorm:"default:true"`

	Variants  []ServiceVariant       `gorm:"foreignKey:ServiceID"`
	Schedules []AvailabilitySchedule `gorm:"foreignKey:ServiceID"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

type ServiceVariant struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	ServiceID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name            string  `gorm:"not null"`
	Price           float64 `gorm:"type:decimal(10,2);not null"`
	DurationMinutes *int    // overrides the service duration when set
	DisplayOrder    int     `gorm:"default:0"`

	gorm.Model
}

func (v *ServiceVariant) BeforeCreate(tx *gorm.DB) (err error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return
}
