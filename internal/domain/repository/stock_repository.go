package repository

import "github.com/tu-usuario/inventario-kardex/internal/domain/entity"

// StockRepository define el puerto para consultar/actualizar stock por
// producto+ubicación. Las mutaciones ocurren siempre dentro de la transacción
// del motor de movimientos (o de la carga inicial, que fija la línea base).
type StockRepository interface {
	// Get devuelve la fila de stock; si no existe, una fila con cantidad 0.
	Get(productCode string, locationID int64) (*entity.Stock, error)
	// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE)
	// para serializar escritores concurrentes sobre el mismo par.
	GetForUpdate(productCode string, locationID int64) (*entity.Stock, error)
	// Upsert fija la cantidad absoluta (ON CONFLICT sobre la clave
	// compuesta). Solo para la línea base de la carga inicial; los
	// movimientos suman con AddQuantity.
	Upsert(stock *entity.Stock) error
	// AddQuantity suma qty a la fila, creándola si no existe. El upsert por
	// delta serializa la primera entrada a una ubicación: SELECT FOR UPDATE
	// no bloquea filas que todavía no existen.
	AddQuantity(productCode string, locationID, qty int64) error
	// TotalByProduct suma el stock del producto en todas las ubicaciones
	// (el "presente" autoritativo que consume la traza).
	TotalByProduct(productCode string) (int64, error)
	// ByLocation lista el stock agregado por ubicación (dashboard).
	ByLocation() ([]*LocationStockResult, error)
}

// LocationStockResult agregado de stock por ubicación.
type LocationStockResult struct {
	LocationName string
	TotalStock   int64
}
