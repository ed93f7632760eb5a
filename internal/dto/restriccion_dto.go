package dto

type CrearRestriccionRequest struct {
	Zona    string `json:"zona"     validate:"required,min=2"`
	Horario string `json:"horario"  validate:"required"`
	Dias    string `json:"dias"     validate:"required"`
	AplicaA string `json:"aplica_a" validate:"required"`
	Notas   string `json:"notas"`
}

type ActualizarRestriccionRequest struct {
	Zona    *string `json:"zona"     validate:"omitempty,min=2"`
	Horario *string `json:"horario"`
	Dias    *string `json:"dias"`
	AplicaA *string `json:"aplica_a"`
	Notas   *string `json:"notas"`
}

type RestriccionResponse struct {
	ID      string `json:"id"`
	HubID   string `json:"hub_id"`
	Zona    string `json:"zona"`
	Horario string `json:"horario"`
	Dias    string `json:"dias"`
	AplicaA string `json:"aplica_a"`
	Notas   string `json:"notas"`
}
