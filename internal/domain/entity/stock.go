package entity

import "time"

// Stock representa la cantidad actual de un producto en una ubicación
// (proyección materializada del libro de movimientos; a lo sumo una fila por
// par producto-ubicación). Sólo el motor de movimientos la muta, salvo la
// carga inicial que fija la línea base directamente.
type Stock struct {
	ProductCode string // cod_venta
	LocationID  int64
	Quantity    int64 // invariante: >= 0
	UpdatedAt   time.Time
}
