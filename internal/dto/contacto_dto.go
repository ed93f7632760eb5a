package dto

type CrearContactoRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
}

type ActualizarContactoRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2"`
	Position *string `json:"position"`
	Phone    *string `json:"phone"`
}

type ContactoResponse struct {
	ID       string `json:"id"`
	HubID    string `json:"hub_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Phone    string `json:"phone"`
}
