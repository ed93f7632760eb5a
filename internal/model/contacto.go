package model

import (
	"time"

	"github.com/google/uuid"
)

// Contacto is a phone-book entry of a hub.
type Contacto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Position  string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Contacto) TableName() string { return "contactos" }
