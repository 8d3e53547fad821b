package kardex

import (
	"fmt"

	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
)

// Entry es un movimiento anotado con el stock resultante después de aplicarlo.
type Entry struct {
	Movement       *entity.Movement
	ResultingStock int64 // stock_resultante
}

// Trace es la trazabilidad (Kardex) de un producto: stock inicial reconstruido,
// stock actual y el saldo corrido por movimiento.
type Trace struct {
	InitialStock int64
	CurrentStock int64
	Entries      []Entry
}

// Build reconstruye el Kardex de un producto. Recibe el stock actual total
// (suma de Stock en todas las ubicaciones, la caché autoritativa del presente)
// y los movimientos en orden cronológico ascendente (fecha_hora, id).
//
// Como no se guardan fotos históricas por ubicación, el stock inicial se
// despeja de la identidad de conciliación:
//
//	inicial + Σ efectos = actual  ⇒  inicial = actual − Σ efectos
//
// Con cero movimientos, inicial == actual y la lista queda vacía.
func Build(currentStock int64, movements []*entity.Movement) (*Trace, error) {
	var net int64
	for _, m := range movements {
		effect, ok := m.SignedEffect()
		if !ok {
			return nil, fmt.Errorf("kardex: tipo de movimiento desconocido %q (id %d)", m.Type, m.ID)
		}
		net += effect
	}

	initial := currentStock - net

	entries := make([]Entry, 0, len(movements))
	running := initial
	for _, m := range movements {
		effect, _ := m.SignedEffect()
		running += effect
		entries = append(entries, Entry{Movement: m, ResultingStock: running})
	}

	return &Trace{
		InitialStock: initial,
		CurrentStock: currentStock,
		Entries:      entries,
	}, nil
}
