package dto

// SaveLocationRequest entrada para crear o actualizar una ubicación.
type SaveLocationRequest struct {
	Name   string `json:"nombre"`
	Type   string `json:"tipo"`
	Active *bool  `json:"activa"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"nombre"`
	Type      string `json:"tipo"`
	TypeLabel string `json:"tipo_display"`
	Active    bool   `json:"activa"`
}
