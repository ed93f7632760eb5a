package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearVehiculoRequest struct {
	Plate       string `json:"plate"        validate:"required,min=2"`
	VehicleType string `json:"vehicle_type" validate:"required"`
}

type ActualizarVehiculoRequest struct {
	Plate       *string `json:"plate"        validate:"omitempty,min=2"`
	VehicleType *string `json:"vehicle_type"`
}

type CrearIncidenciaRequest struct {
	VehiculoID  string          `json:"vehicle_id"  validate:"required,uuid"`
	Title       string          `json:"title"       validate:"required,min=2"`
	Description string          `json:"description"`
	Fecha       string          `json:"date"` // dd/mm/yyyy free text
	Cost        decimal.Decimal `json:"cost"        validate:"min=0"`
	Km          int             `json:"km"          validate:"min=0"`
}

type ActualizarIncidenciaRequest struct {
	Title       *string          `json:"title"       validate:"omitempty,min=2"`
	Description *string          `json:"description"`
	Fecha       *string          `json:"date"`
	Cost        *decimal.Decimal `json:"cost"`
	Km          *int             `json:"km"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VehiculoResponse struct {
	ID          string `json:"id"`
	HubID       string `json:"hub_id"`
	Plate       string `json:"plate"`
	VehicleType string `json:"vehicle_type"`
}

type IncidenciaResponse struct {
	ID          string          `json:"id"`
	VehiculoID  string          `json:"vehicle_id"`
	HubID       string          `json:"hub_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Fecha       string          `json:"date"`
	Cost        decimal.Decimal `json:"cost"`
	Km          int             `json:"km"`
}
