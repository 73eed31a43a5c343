package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentMethod struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID uuid.UUID `gorm:"type:uuid;index;not null"`

	Name         string `gorm:"not null"` // e.g. "Efectivo", "Transferencia"
	Details      string // account number, alias, instructions
	IsActive     bool   `gorm:"default:true"`
	DisplayOrder int    `gorm:"default:0"`

	gorm.Model
}

func (p *PaymentMethod) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
