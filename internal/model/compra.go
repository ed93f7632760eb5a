package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Compra is a purchase order line of a hub. Total is computed server-side at
// write time as price × quantity; price and quantity default to 1.
type Compra struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HubID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Item           string    `gorm:"not null"`
	Specifications string
	Supplier       string
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null;default:1"`
	Quantity       int             `gorm:"not null;default:1"`
	Total          decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Compra) TableName() string { return "compras" }
