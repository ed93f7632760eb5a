package dto

type CrearFestivoRequest struct {
	Fecha string `json:"date" validate:"required"`
	Name  string `json:"name" validate:"required,min=2"`
	Type  string `json:"type" validate:"required"`
}

type FestivoResponse struct {
	ID       string `json:"id"`
	HubID    string `json:"hub_id"`
	Fecha    string `json:"date"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	IsPreset bool   `json:"is_preset"`
}
