package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearEmpleadoRequest struct {
	Name     string `json:"name"     validate:"required,min=2"`
	Position string `json:"position"`
}

// AsistenciaEntry is one cell of the monthly grid as sent by the client.
// Status is validated against the known codes in the service layer.
type AsistenciaEntry struct {
	EmpleadoID string          `json:"employee_id" validate:"required,uuid"`
	Fecha      string          `json:"date"        validate:"required"`
	Status     string          `json:"status"`
	ExtraHours decimal.Decimal `json:"extra_hours" validate:"min=0"`
	Diet       int             `json:"diet"        validate:"min=0"`
}

type GuardarAsistenciasRequest struct {
	Entries []AsistenciaEntry `json:"entries" validate:"required,dive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmpleadoResponse struct {
	ID       string `json:"id"`
	HubID    string `json:"hub_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

type AsistenciaCell struct {
	Status     string          `json:"status"`
	ExtraHours decimal.Decimal `json:"extra_hours"`
	Diet       int             `json:"diet"`
}

// GridAsistenciasResponse is the month view: employees plus the sparse cell
// map keyed by "<employee_id>_<date>".
type GridAsistenciasResponse struct {
	Employees   []EmpleadoResponse        `json:"employees"`
	Attendance  map[string]AsistenciaCell `json:"attendance"`
	DaysInMonth int                       `json:"days_in_month"`
}

// ResumenEmpleado aggregates one employee's month.
type ResumenEmpleado struct {
	EmpleadoID      string          `json:"employee_id"`
	EmpleadoName    string          `json:"employee_name"`
	DaysWorked      int             `json:"days_worked"`
	DaysRest        int             `json:"days_rest"`
	DaysAbsent      int             `json:"days_absent"`
	DaysSick        int             `json:"days_sick"`
	DaysOther       int             `json:"days_other"`
	TotalExtraHours decimal.Decimal `json:"total_extra_hours"`
	TotalDiets      int             `json:"total_diets"`
}

type ResumenAsistenciasResponse struct {
	Summary []ResumenEmpleado `json:"summary"`
}
