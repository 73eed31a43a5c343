package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleException blocks part or all of one calendar date.
// ServiceID nil applies the block to every service of the tenant.
// StartTime nil blocks the entire day; StartTime set with EndTime nil blocks
// only the slot starting at that exact time.
type ScheduleException struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	TenantID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	ServiceID *uuid.UUID `gorm:"type:uuid;index"`

	ExceptionDate string  `gorm:"type:varchar(10);index;not null"` // "YYYY-MM-DD"
	StartTime     *string `gorm:"type:varchar(5)"`
	EndTime       *string `gorm:"type:varchar(5)"`
	IsBlocked     bool    `gorm:"default:true"` // schema keeps the flag; read paths are block-only
	Reason        string

	gorm.Model
}

func (e *ScheduleException) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}

// AppliesTo reports whether the exception matches a (service, date) target.
func (e *ScheduleException) AppliesTo(serviceID uuid.UUID, date string) bool {
	if e.ExceptionDate != date {
		return false
	}
	return e.ServiceID == nil || *e.ServiceID == serviceID
}
