package model

import (
	"time"

	"github.com/google/uuid"
)

// Registro is the category-based catch-all record a hub page can attach free
// documentation to. Uploaded files are stored inline, base64 encoded.
type Registro struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HubID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Category    string    `gorm:"not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	FileName    *string
	FileData    *string `gorm:"type:text"` // base64
	ContentType *string
	CreatedBy   uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Registro) TableName() string { return "registros" }
