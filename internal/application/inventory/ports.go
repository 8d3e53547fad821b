package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de
// movimientos: o se aplican todos los efectos sobre stock más el registro
// del movimiento, o ninguno. Las cargas masivas abren un único scope para
// todo el lote.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error) error
}
