package dto

// MonthlySalesDTO unidades vendidas en un mes (AAAA-MM).
type MonthlySalesDTO struct {
	Month string `json:"mes"`
	Total int64  `json:"total"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	SaleCode    string `json:"producto_cod_venta"`
	Description string `json:"producto_descripcion"`
	TotalSold   int64  `json:"total_vendido"`
}

// LocationStockDTO stock total por ubicación.
type LocationStockDTO struct {
	LocationName string `json:"ubicacion_nombre"`
	TotalStock   int64  `json:"total_stock"`
}

// DashboardResponse datos resumidos del dashboard ejecutivo.
type DashboardResponse struct {
	MonthlySales    []MonthlySalesDTO  `json:"ventas_mensuales"`
	TopSold         []TopProductDTO    `json:"top_vendidos"`
	StockByLocation []LocationStockDTO `json:"stock_por_ubicacion"`
}
