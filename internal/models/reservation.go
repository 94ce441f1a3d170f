package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation is a scheduled service request tied to one client and one
// vehicle. ClientID is a checked reference, not a foreign-key constraint:
// existence is re-verified on every create and on every update that touches
// the field.
type Reservation struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`

	Vehicle     string `gorm:"size:100;not null" json:"vehicle"`
	ServiceType string `gorm:"size:50;not null" json:"serviceType"`
	Status      string `gorm:"size:20;default:'Pending'" json:"status"`

	ScheduledDate time.Time `gorm:"not null" json:"scheduledDate"`
	Notes         string    `gorm:"size:500" json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
