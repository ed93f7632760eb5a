package model

import (
	"time"

	"github.com/google/uuid"
)

// Day ranges a restriction can apply to.
var RestriccionDias = []string{"L-V", "L-S", "L-D", "S-D"}

// Vehicle classes a restriction can target.
var RestriccionAplicaA = []string{"vehiculos_0", "vehiculos_combustible", "todos"}

func ValidRestriccionDias(d string) bool {
	for _, v := range RestriccionDias {
		if v == d {
			return true
		}
	}
	return false
}

func ValidRestriccionAplicaA(a string) bool {
	for _, v := range RestriccionAplicaA {
		if v == a {
			return true
		}
	}
	return false
}

// RestriccionHoraria is a time-zone access restriction affecting a hub's
// fleet (low-emission zones, delivery windows, etc.).
type RestriccionHoraria struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Zona      string    `gorm:"not null"`
	Horario   string    `gorm:"not null"` // free text, e.g. "7:00 - 22:00"
	Dias      string    `gorm:"type:varchar(5);not null"`
	AplicaA   string    `gorm:"type:varchar(25);not null"`
	Notas     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RestriccionHoraria) TableName() string { return "restricciones_horarias" }
