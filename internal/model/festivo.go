package model

import (
	"time"

	"github.com/google/uuid"
)

// Holiday types.
const (
	HolidayNacional   = "nacional"
	HolidayAutonomico = "autonomico"
	HolidayLocal      = "local"
)

// ValidHolidayType reports whether t is a known holiday type.
func ValidHolidayType(t string) bool {
	return t == HolidayNacional || t == HolidayAutonomico || t == HolidayLocal
}

// DiaFestivo is a holiday of a hub. IsPreset rows are seeded (the national
// calendar) and are immutable and non-deletable from the API.
type DiaFestivo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Fecha     string    `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	Name      string    `gorm:"not null"`
	Type      string    `gorm:"type:varchar(12);not null"`
	IsPreset  bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DiaFestivo) TableName() string { return "dias_festivos" }
