package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
)

// Todo el vocabulario cerrado tiene signo y etiqueta; nada queda sin clasificar.
func TestMovementType_VocabularioCerrado(t *testing.T) {
	for _, tipo := range entity.MovementTypes {
		sign, ok := tipo.Sign()
		assert.True(t, ok, "tipo %q sin clasificar", tipo)
		assert.Contains(t, []int64{-1, 1}, sign)
		assert.NotEqual(t, string(tipo), tipo.Label(), "tipo %q sin etiqueta legible", tipo)
	}
}

func TestMovementType_Signos(t *testing.T) {
	entradas := []entity.MovementType{
		entity.MovementPurchaseIn, entity.MovementTransferIn, entity.MovementAdjustPlus,
	}
	salidas := []entity.MovementType{
		entity.MovementSale, entity.MovementTransferOut,
		entity.MovementAdjustMinus, entity.MovementShrinkage,
	}
	for _, tipo := range entradas {
		s, ok := tipo.Sign()
		assert.True(t, ok)
		assert.Equal(t, int64(1), s, "tipo %q", tipo)
	}
	for _, tipo := range salidas {
		s, ok := tipo.Sign()
		assert.True(t, ok)
		assert.Equal(t, int64(-1), s, "tipo %q", tipo)
	}
}

// El string legado "ajuste" quedó fuera del enum: el split positivo/negativo
// lo reemplaza y cualquier valor desconocido se rechaza.
func TestMovementType_AjusteLegadoInvalido(t *testing.T) {
	assert.False(t, entity.MovementType("ajuste").Valid())
	assert.False(t, entity.MovementType("").Valid())

	m := entity.Movement{Type: "ajuste", Quantity: 5}
	_, ok := m.SignedEffect()
	assert.False(t, ok)
}
