package dto

// BatchResultResponse resultado de una carga masiva: filas procesadas y
// errores por fila ("Error en fila N: ..."). Las filas fallidas se saltan
// sin abortar el lote.
type BatchResultResponse struct {
	Message   string   `json:"message"`
	Processed int      `json:"procesadas"`
	Errors    []string `json:"errores"`
}
