package dto

import "github.com/shopspring/decimal"

// SaveProductRequest entrada para crear o actualizar un producto del catálogo.
type SaveProductRequest struct {
	SaleCode      string          `json:"cod_venta"`
	Description   string          `json:"descripcion"`
	Price         decimal.Decimal `json:"precio"`
	Cost          decimal.Decimal `json:"costo"`
	FactoryID     string          `json:"id_fabrica"`
	MinStock      int64           `json:"stock_minimo"`
	CriticalStock int64           `json:"stock_critico"`
	MaxStock      int64           `json:"stock_maximo"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	SaleCode      string          `json:"cod_venta"`
	Description   string          `json:"descripcion"`
	Price         decimal.Decimal `json:"precio"`
	Cost          decimal.Decimal `json:"costo"`
	FactoryID     string          `json:"id_fabrica"`
	MinStock      int64           `json:"stock_minimo"`
	CriticalStock int64           `json:"stock_critico"`
	MaxStock      int64           `json:"stock_maximo"`
}
