package dto

// ReportFilterRequest filtros opcionales del reporte avanzado (query params).
type ReportFilterRequest struct {
	DateFrom    string `query:"fecha_inicio"` // AAAA-MM-DD, inclusive
	DateTo      string `query:"fecha_fin"`    // AAAA-MM-DD, inclusive
	ProductCode string `query:"producto_id"`  // subcadena de cod_venta
	Type        string `query:"tipo_movimiento"`
	LocationID  *int64 `query:"ubicacion_id"` // origen o destino
}

// ReportRowDTO fila del reporte de movimientos.
type ReportRowDTO struct {
	ID          int64  `json:"id"`
	Timestamp   string `json:"fecha_hora"`
	ProductCode string `json:"producto_cod"`
	ProductDesc string `json:"producto_desc"`
	Type        string `json:"tipo"`
	TypeLabel   string `json:"tipo_display"`
	Quantity    int64  `json:"cantidad"`
	User        string `json:"usuario"`
	Origin      string `json:"origen"`
	Destination string `json:"destino"`
	Detail      string `json:"detalle"`
}
