package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearKilosLitrosRequest struct {
	RutaID     string          `json:"route_id"   validate:"required,uuid"`
	Fecha      string          `json:"date"       validate:"required"`
	Repartidor string          `json:"repartidor" validate:"required,min=1"`
	Clientes   int             `json:"clientes"   validate:"min=0"`
	Kilos      decimal.Decimal `json:"kilos"      validate:"min=0"`
	Litros     decimal.Decimal `json:"litros"     validate:"min=0"`
	Bultos     int             `json:"bultos"     validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type KilosLitrosResponse struct {
	ID         string          `json:"id"`
	RutaID     string          `json:"route_id"`
	Fecha      string          `json:"date"`
	Repartidor string          `json:"repartidor"`
	Clientes   int             `json:"clientes"`
	Kilos      decimal.Decimal `json:"kilos"`
	Litros     decimal.Decimal `json:"litros"`
	Bultos     int             `json:"bultos"`
}

// TotalesKilosLitros sums the numeric columns of a set of entries.
type TotalesKilosLitros struct {
	Clientes int             `json:"clientes"`
	Kilos    decimal.Decimal `json:"kilos"`
	Litros   decimal.Decimal `json:"litros"`
	Bultos   int             `json:"bultos"`
}

type ResumenKilosRepartidor struct {
	Repartidor string `json:"repartidor"`
	TotalesKilosLitros
}

type ResumenKilosRuta struct {
	RutaID   string `json:"route_id"`
	RutaName string `json:"route_name"`
	TotalesKilosLitros
}

type ResumenKilosLitrosResponse struct {
	Totals       TotalesKilosLitros       `json:"totals"`
	ByRepartidor []ResumenKilosRepartidor `json:"by_repartidor"`
	ByRoute      []ResumenKilosRuta       `json:"by_route"`
}
