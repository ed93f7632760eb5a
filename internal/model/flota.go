package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleTypes are the accepted fleet categories.
var VehicleTypes = []string{"Moto", "Furgoneta", "Carrozado", "Trailer", "Camión", "MUS"}

// ValidVehicleType reports whether t is one of VehicleTypes.
func ValidVehicleType(t string) bool {
	for _, v := range VehicleTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Vehiculo is a fleet vehicle of a hub. Plates are stored uppercased.
type Vehiculo struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HubID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Plate       string    `gorm:"not null;index"`
	VehicleType string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Vehiculo) TableName() string { return "vehiculos" }

// Incidencia records a vehicle incident. Fecha keeps the dd/mm/yyyy free-text
// form the operators type in.
type Incidencia struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VehiculoID  uuid.UUID `gorm:"type:uuid;not null;index"`
	HubID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"not null"`
	Description string
	Fecha       string          `gorm:"type:varchar(10);not null;default:''"` // dd/mm/yyyy
	Cost        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Km          int             `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Incidencia) TableName() string { return "incidencias" }
