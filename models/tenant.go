package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tenant struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name        string `gorm:"not null"`
	Slug        string `gorm:"uniqueIndex;not null"` // public booking page key
	Description string
	Address     string
	Phone       string

	WhatsAppNotifications bool `gorm:"default:true"`

	Services       []Service          `gorm:"foreignKey:TenantID"`
	Exceptions     []ScheduleException `gorm:"foreignKey:TenantID"`
	Appointments   []Appointment      `gorm:"foreignKey:TenantID"`
	PaymentMethods []PaymentMethod    `gorm:"foreignKey:TenantID"`

	gorm.Model
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}
