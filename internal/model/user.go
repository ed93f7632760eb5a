package model

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. New registrations start unapproved and cannot
// log in until an administrator approves them.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	FullName     string    `gorm:"not null"`
	IsAdmin      bool      `gorm:"not null;default:false"`
	IsApproved   bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }
