package dto

type CrearRegistroRequest struct {
	HubID       string `json:"hub_id"      validate:"required,uuid"`
	Category    string `json:"category"    validate:"required"`
	Title       string `json:"title"       validate:"required,min=1"`
	Description string `json:"description"`
}

type ActualizarRegistroRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type RegistroResponse struct {
	ID          string  `json:"id"`
	HubID       string  `json:"hub_id"`
	Category    string  `json:"category"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	FileName    *string `json:"file_name"`
	FileData    *string `json:"file_data"`
	ContentType *string `json:"content_type"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CategoryResponse struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type StatsResponse struct {
	TotalHubs         int64            `json:"total_hubs"`
	TotalRecords      int64            `json:"total_records"`
	TotalUsers        int64            `json:"total_users"`
	PendingUsers      int64            `json:"pending_users"`
	RecordsByCategory map[string]int64 `json:"records_by_category"`
}
