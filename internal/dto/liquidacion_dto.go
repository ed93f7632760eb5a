package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearRutaRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

// LiquidacionEntry is one day's reconciliation row for a route.
type LiquidacionEntry struct {
	RutaID     string          `json:"route_id"   validate:"required,uuid"`
	Fecha      string          `json:"date"       validate:"required"`
	Repartidor string          `json:"repartidor"`
	Metalico   decimal.Decimal `json:"metalico"   validate:"min=0"`
	Ingreso    decimal.Decimal `json:"ingreso"    validate:"min=0"`
	Comentario string          `json:"comentario"`
}

type GuardarLiquidacionesRequest struct {
	Entries []LiquidacionEntry `json:"entries" validate:"required,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type RutaResponse struct {
	ID    string `json:"id"`
	HubID string `json:"hub_id"`
	Name  string `json:"name"`
}

type LiquidacionResponse struct {
	ID         string          `json:"id"`
	RutaID     string          `json:"route_id"`
	Fecha      string          `json:"date"`
	Repartidor string          `json:"repartidor"`
	Metalico   decimal.Decimal `json:"metalico"`
	Ingreso    decimal.Decimal `json:"ingreso"`
	Diferencia decimal.Decimal `json:"diferencia"`
	Comentario string          `json:"comentario"`
}

// DescuadreDetectado is an individual discrepant entry inside a route summary.
type DescuadreDetectado struct {
	Fecha      string          `json:"date"`
	Repartidor string          `json:"repartidor"`
	Diferencia decimal.Decimal `json:"diferencia"`
}

type ResumenRuta struct {
	RutaID               string               `json:"route_id"`
	RutaName             string               `json:"route_name"`
	TotalMetalico        decimal.Decimal      `json:"total_metalico"`
	TotalIngreso         decimal.Decimal      `json:"total_ingreso"`
	Descuadre            decimal.Decimal      `json:"descuadre"`
	DescuadresDetectados []DescuadreDetectado `json:"descuadres_detectados"`
}

type ResumenRepartidor struct {
	Repartidor string          `json:"repartidor"`
	Total      decimal.Decimal `json:"total"`
	Estado     string          `json:"estado"`
}

type ResumenLiquidacionesResponse struct {
	ByRoute      []ResumenRuta       `json:"by_route"`
	ByRepartidor []ResumenRepartidor `json:"by_repartidor"`
}
