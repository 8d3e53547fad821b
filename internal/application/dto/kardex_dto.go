package dto

// KardexMovementDTO movimiento anotado con el stock resultante.
type KardexMovementDTO struct {
	ID             int64  `json:"id"`
	Type           string `json:"tipo"`
	TypeLabel      string `json:"tipo_display"`
	Quantity       int64  `json:"cantidad"`
	Timestamp      string `json:"fecha_hora"`
	User           string `json:"usuario"`
	Origin         string `json:"origen"`
	Destination    string `json:"destino"`
	Detail         string `json:"detalle"`
	ResultingStock int64  `json:"stock_resultante"`
}

// KardexResponse trazabilidad completa de un producto.
type KardexResponse struct {
	ProductSaleCode    string              `json:"producto_cod_venta"`
	ProductDescription string              `json:"producto_descripcion"`
	InitialStock       int64               `json:"stock_inicial"`
	CurrentStock       int64               `json:"stock_actual"`
	Movements          []KardexMovementDTO `json:"movimientos"`
}
