package kardex_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/kardex"
)

func mov(id int64, tipo entity.MovementType, cantidad int64) *entity.Movement {
	return &entity.Movement{
		ID:          id,
		ProductCode: "BI000001",
		Type:        tipo,
		Quantity:    cantidad,
		Timestamp:   time.Date(2024, 1, 1, 0, 0, int(id), 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Caso base: producto sin movimientos → inicial == actual, lista vacía.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_SinMovimientos(t *testing.T) {
	tr, err := kardex.Build(42, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), tr.InitialStock)
	assert.Equal(t, int64(42), tr.CurrentStock)
	assert.Empty(t, tr.Entries)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reconstrucción del stock inicial y saldo corrido.
// Historia: entrada 100, traslado 30, venta 5, merma 2, ajuste +10.
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_SaldoCorrido(t *testing.T) {
	movs := []*entity.Movement{
		mov(1, entity.MovementPurchaseIn, 100),
		mov(2, entity.MovementTransferOut, 30),
		mov(3, entity.MovementSale, 5),
		mov(4, entity.MovementShrinkage, 2),
		mov(5, entity.MovementAdjustPlus, 10),
	}
	// efecto neto = +100 −30 −5 −2 +10 = 73
	tr, err := kardex.Build(93, movs)
	require.NoError(t, err)

	assert.Equal(t, int64(20), tr.InitialStock, "inicial = actual − neto")
	require.Len(t, tr.Entries, 5)
	assert.Equal(t, int64(120), tr.Entries[0].ResultingStock)
	assert.Equal(t, int64(90), tr.Entries[1].ResultingStock)
	assert.Equal(t, int64(85), tr.Entries[2].ResultingStock)
	assert.Equal(t, int64(83), tr.Entries[3].ResultingStock)
	assert.Equal(t, int64(93), tr.Entries[4].ResultingStock)

	// El último saldo corrido cierra contra el stock actual.
	assert.Equal(t, tr.CurrentStock, tr.Entries[len(tr.Entries)-1].ResultingStock)
}

// Identidad de conciliación: inicial + Σ efectos == actual para cualquier historia.
func TestBuild_IdentidadConciliacion(t *testing.T) {
	historias := [][]*entity.Movement{
		{},
		{mov(1, entity.MovementPurchaseIn, 7)},
		{mov(1, entity.MovementSale, 3), mov(2, entity.MovementAdjustMinus, 1)},
		{
			mov(1, entity.MovementTransferIn, 12),
			mov(2, entity.MovementTransferOut, 4),
			mov(3, entity.MovementShrinkage, 1),
			mov(4, entity.MovementAdjustPlus, 2),
			mov(5, entity.MovementSale, 6),
		},
	}
	for _, movs := range historias {
		tr, err := kardex.Build(50, movs)
		require.NoError(t, err)
		var neto int64
		for _, m := range movs {
			e, ok := m.SignedEffect()
			require.True(t, ok)
			neto += e
		}
		assert.Equal(t, tr.CurrentStock, tr.InitialStock+neto)
	}
}

// Un tipo fuera del vocabulario nunca se adivina: Build devuelve error.
func TestBuild_TipoDesconocido(t *testing.T) {
	movs := []*entity.Movement{mov(1, entity.MovementType("ajuste"), 5)}
	_, err := kardex.Build(10, movs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ajuste")
}
