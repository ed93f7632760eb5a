package dto

import "github.com/shopspring/decimal"

// CrearCompraRequest uses pointers for price/quantity so that an omitted
// field falls back to the documented default of 1.
type CrearCompraRequest struct {
	Item           string           `json:"item"           validate:"required,min=1"`
	Specifications string           `json:"specifications"`
	Supplier       string           `json:"supplier"`
	Price          *decimal.Decimal `json:"price"          validate:"omitempty,min=0"`
	Quantity       *int             `json:"quantity"       validate:"omitempty,min=0"`
}

type ActualizarCompraRequest struct {
	Item           *string          `json:"item"           validate:"omitempty,min=1"`
	Specifications *string          `json:"specifications"`
	Supplier       *string          `json:"supplier"`
	Price          *decimal.Decimal `json:"price"          validate:"omitempty,min=0"`
	Quantity       *int             `json:"quantity"       validate:"omitempty,min=0"`
}

type CompraResponse struct {
	ID             string          `json:"id"`
	HubID          string          `json:"hub_id"`
	Item           string          `json:"item"`
	Specifications string          `json:"specifications"`
	Supplier       string          `json:"supplier"`
	Price          decimal.Decimal `json:"price"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
}
