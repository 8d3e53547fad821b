package entity

import "time"

// MovementType es el vocabulario cerrado de tipos de movimiento. Los valores
// se conservan tal cual en la base de datos y en la API; la etiqueta legible
// se obtiene con Label().
type MovementType string

const (
	MovementPurchaseIn  MovementType = "entrada_compra"
	MovementTransferIn  MovementType = "transferencia_entrada"
	MovementTransferOut MovementType = "transferencia_salida"
	MovementSale        MovementType = "venta"
	MovementAdjustPlus  MovementType = "ajuste_positivo"
	MovementAdjustMinus MovementType = "ajuste_negativo"
	MovementShrinkage   MovementType = "merma"
)

// MovementTypes lista todos los tipos válidos (orden estable para reportes).
var MovementTypes = []MovementType{
	MovementPurchaseIn,
	MovementTransferIn,
	MovementTransferOut,
	MovementSale,
	MovementAdjustPlus,
	MovementAdjustMinus,
	MovementShrinkage,
}

// Valid indica si el tipo pertenece al vocabulario cerrado.
func (t MovementType) Valid() bool {
	_, ok := t.Sign()
	return ok
}

// Sign devuelve el signo del efecto del movimiento sobre el stock total del
// producto: +1 para entradas, -1 para salidas. El switch es exhaustivo sobre
// el vocabulario; un tipo fuera del enum devuelve ok=false y debe tratarse
// como error, nunca adivinarse.
//
// transferencia_salida lleva origen y destino en un solo registro (convención
// de un-movimiento-por-traslado); sobre el stock total del producto su efecto
// neto es -cantidad en el origen y +cantidad implícito en el destino, por lo
// que para la traza global cuenta como salida y transferencia_entrada, si
// existiera históricamente, como entrada.
func (t MovementType) Sign() (int64, bool) {
	switch t {
	case MovementPurchaseIn, MovementTransferIn, MovementAdjustPlus:
		return +1, true
	case MovementSale, MovementTransferOut, MovementAdjustMinus, MovementShrinkage:
		return -1, true
	}
	return 0, false
}

// Inbound indica si el tipo suma stock en su ubicación destino.
func (t MovementType) Inbound() bool {
	s, ok := t.Sign()
	return ok && s > 0
}

// Label devuelve la etiqueta legible del tipo.
func (t MovementType) Label() string {
	switch t {
	case MovementPurchaseIn:
		return "Entrada por Compra"
	case MovementTransferIn:
		return "Entrada por Transferencia"
	case MovementTransferOut:
		return "Salida por Transferencia"
	case MovementSale:
		return "Venta"
	case MovementAdjustPlus:
		return "Ajuste Positivo"
	case MovementAdjustMinus:
		return "Ajuste Negativo"
	case MovementShrinkage:
		return "Merma"
	}
	return string(t)
}

// Movement es un registro inmutable del libro de movimientos (append-only).
// El stock por ubicación es una proyección derivada de estos registros.
// Quantity siempre se guarda en positivo; la dirección la da el tipo.
type Movement struct {
	ID            int64
	ProductCode   string // cod_venta
	Type          MovementType
	Quantity      int64     // magnitud, siempre >= 0
	Timestamp     time.Time // fecha_hora, asignada por el servidor al insertar
	UserID        *string   // nulo = "Sistema"
	OriginID      *int64    // ubicación origen (salidas y traslados)
	DestinationID *int64    // ubicación destino (entradas y traslados)
	Detail        string
}

// SignedEffect devuelve el efecto con signo del movimiento sobre el stock
// total del producto, o ok=false si el tipo no pertenece al vocabulario.
func (m *Movement) SignedEffect() (int64, bool) {
	sign, ok := m.Type.Sign()
	if !ok {
		return 0, false
	}
	return sign * m.Quantity, true
}
