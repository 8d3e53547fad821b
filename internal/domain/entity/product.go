package entity

import "github.com/shopspring/decimal"

// SaleCodeLength es el largo fijo del código de venta (clave natural del producto).
const SaleCodeLength = 8

// Product representa un producto del catálogo. La clave es el código de venta
// (cod_venta, 8 caracteres). Los umbrales de stock son informativos para el
// dashboard; la cantidad real vive en Stock por ubicación.
type Product struct {
	SaleCode      string          // cod_venta, PK natural
	Description   string
	Price         decimal.Decimal // precio de venta, 2 decimales
	Cost          decimal.Decimal // costo, 2 decimales
	FactoryID     string          // id_fabrica
	MinStock      int64           // stock_minimo
	CriticalStock int64           // stock_critico
	MaxStock      int64           // stock_maximo
}

// ValidSaleCode valida el formato del código de venta (exactamente 8 caracteres).
func ValidSaleCode(code string) bool {
	return len(code) == SaleCodeLength
}
