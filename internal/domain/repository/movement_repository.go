package repository

import (
	"time"

	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
)

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. Sólo hay Create y lecturas: los movimientos nunca se mutan.
type MovementRepository interface {
	// Create persiste el movimiento y rellena ID y Timestamp asignados por
	// el servidor (el ID creciente desempata timestamps iguales).
	Create(movement *entity.Movement) error
	// ListByProductAsc devuelve la historia completa del producto en orden
	// cronológico ascendente, desempatando por ID de inserción.
	ListByProductAsc(productCode string) ([]*entity.Movement, error)
	// Search aplica los filtros del reporte y devuelve los movimientos con
	// nombres resueltos, del más reciente al más antiguo.
	Search(filter MovementFilter) ([]*MovementReportRow, error)
}

// MovementFilter filtros opcionales del reporte avanzado.
type MovementFilter struct {
	DateFrom    *time.Time // inclusive, por fecha calendario
	DateTo      *time.Time // inclusive, por fecha calendario
	ProductCode string     // subcadena de cod_venta, case-insensitive
	Type        entity.MovementType
	LocationID  *int64 // coincide con origen O destino
}

// MovementReportRow fila de reporte con referencias resueltas a nombres.
type MovementReportRow struct {
	Movement           entity.Movement
	ProductDescription string
	Username           *string
	OriginName         *string
	DestinationName    *string
}
