package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Empleado belongs to a hub. Deleting an employee removes their attendance
// entries as well.
type Empleado struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Position  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Empleado) TableName() string { return "empleados" }

// Attendance status codes as entered in the monthly grid.
// "1" trabajado | "D" descanso | "IN" inasistente | "E" enfermo | "O" otros.
// Empty means the cell has no status and counts toward no category.
const (
	StatusWorked = "1"
	StatusRest   = "D"
	StatusAbsent = "IN"
	StatusSick   = "E"
	StatusOther  = "O"
)

// ValidStatus reports whether s is a known attendance code (empty included).
func ValidStatus(s string) bool {
	switch s {
	case StatusWorked, StatusRest, StatusAbsent, StatusSick, StatusOther, "":
		return true
	}
	return false
}

// Asistencia is one attendance cell, logically unique per (empleado, fecha).
// The grid is sparse: only cells with any non-empty field are persisted.
type Asistencia struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpleadoID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_asistencia_empleado_fecha"`
	HubID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha      string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_asistencia_empleado_fecha"` // YYYY-MM-DD
	Status     string          `gorm:"type:varchar(2);not null;default:''"`
	ExtraHours decimal.Decimal `gorm:"type:decimal(6,2);not null;default:0"`
	Diet       int             `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Asistencia) TableName() string { return "asistencias" }

// Empty reports whether the cell carries no information and should not be
// persisted (or should be removed if previously saved).
func (a Asistencia) Empty() bool {
	return a.Status == "" && a.ExtraHours.IsZero() && a.Diet == 0
}
