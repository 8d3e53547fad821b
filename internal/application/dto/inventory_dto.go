package dto

// RegisterMovementRequest entrada HTTP para registrar un movimiento manual.
// Cantidad siempre en positivo; la dirección la determina el tipo.
// Entradas (entrada_compra, transferencia_entrada, ajuste_positivo) usan
// ubicacion_destino; salidas (venta, merma, ajuste_negativo) usan
// ubicacion_origen; transferencia_salida usa ambas.
type RegisterMovementRequest struct {
	SaleCode      string `json:"cod_venta"`
	Type          string `json:"tipo"`
	Quantity      int64  `json:"cantidad"`
	OriginID      *int64 `json:"ubicacion_origen"`
	DestinationID *int64 `json:"ubicacion_destino"`
	Detail        string `json:"detalle"`
}

// MovementResponse salida de un movimiento registrado.
type MovementResponse struct {
	ID            int64  `json:"id"`
	SaleCode      string `json:"cod_venta"`
	Type          string `json:"tipo"`
	TypeLabel     string `json:"tipo_display"`
	Quantity      int64  `json:"cantidad"`
	Timestamp     string `json:"fecha_hora"`
	User          string `json:"usuario"`
	Origin        string `json:"origen"`
	Destination   string `json:"destino"`
	Detail        string `json:"detalle"`
	OriginID      *int64 `json:"ubicacion_origen_id,omitempty"`
	DestinationID *int64 `json:"ubicacion_destino_id,omitempty"`
}
