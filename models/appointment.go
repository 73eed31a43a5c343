package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ActiveStatuses are the statuses that occupy slot capacity.
// A completed appointment frees its slot.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

type Appointment struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	ServiceID uuid.UUID  `gorm:"type:uuid;index;not null"`
	VariantID *uuid.UUID `gorm:"type:uuid"`

	CustomerName  string `gorm:"not null"`
	CustomerPhone string `gorm:"not null"`
	CustomerEmail string

	AppointmentDate string `gorm:"type:varchar(10);index;not null"` // "YYYY-MM-DD"
	AppointmentTime string `gorm:"type:varchar(5);not null"`        // "HH:MM"

	Status string `gorm:"type:varchar(20);default:'pending';index"`
	// Notes doubles as the cancellation / un-cancellation reason
	Notes         string
	PaymentMethod string

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
