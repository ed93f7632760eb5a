package model

import (
	"time"

	"github.com/google/uuid"
)

// Hub is a physical distribution center and the tenant-scoping root: every
// other collection hangs off a hub_id. Deleting a hub cascades to all of its
// child records (see HubService.Delete).
type Hub struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Hub) TableName() string { return "hubs" }
