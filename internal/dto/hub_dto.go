package dto

type CrearHubRequest struct {
	Name        string `json:"name"        validate:"required,min=2"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

type ActualizarHubRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=2"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

type HubResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	CreatedAt   string `json:"created_at"`
}
