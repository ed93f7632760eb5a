package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ruta is a delivery route of a hub. The same collection serves both the
// liquidaciones and the kilos/litros features; deleting a route cascades to
// the entries of both.
type Ruta struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HubID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Ruta) TableName() string { return "rutas" }

// Liquidacion is the daily cash reconciliation record of a route, unique per
// (ruta, fecha). Metalico is the cash the repartidor declared collecting,
// Ingreso what reached the bank; the signed difference is the descuadre.
type Liquidacion struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RutaID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_liquidacion_ruta_fecha"`
	HubID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha      string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_liquidacion_ruta_fecha"` // YYYY-MM-DD
	Repartidor string          `gorm:"not null;default:''"`                                              // lowercased free text
	Metalico   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Ingreso    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Comentario string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Liquidacion) TableName() string { return "liquidaciones" }

// Diferencia is metalico − ingreso. Positive means declared cash exceeds the
// bank deposit (shortfall risk), negative an over-deposit.
func (l Liquidacion) Diferencia() decimal.Decimal {
	return l.Metalico.Sub(l.Ingreso)
}

// KilosLitros is one delivery-volume entry. Unlike Asistencia/Liquidacion
// there is no upsert key: a route may record several runs on the same day,
// so entries are append-only.
type KilosLitros struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RutaID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	HubID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha      string          `gorm:"type:varchar(10);not null;index"` // YYYY-MM-DD
	Repartidor string          `gorm:"not null"`                        // lowercased free text
	Clientes   int             `gorm:"not null;default:0"`
	Kilos      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Litros     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Bultos     int             `gorm:"not null;default:0"`
	CreatedAt  time.Time
}

func (KilosLitros) TableName() string { return "kilos_litros" }
