package entity

// LocationType clasifica las ubicaciones físicas o lógicas del sistema.
// Los valores se conservan tal cual en la base de datos y en la API.
type LocationType string

const (
	LocationMainWarehouse LocationType = "bodega_principal"
	LocationFixedPoint    LocationType = "punto_fijo"
	LocationTempPoint     LocationType = "punto_temporal"
	LocationIndirectPoint LocationType = "punto_indirecto"
	LocationWebChannel    LocationType = "canal_web"
)

// Valid indica si el tipo de ubicación pertenece al vocabulario cerrado.
func (t LocationType) Valid() bool {
	switch t {
	case LocationMainWarehouse, LocationFixedPoint, LocationTempPoint,
		LocationIndirectPoint, LocationWebChannel:
		return true
	}
	return false
}

// Label devuelve la etiqueta legible del tipo de ubicación.
func (t LocationType) Label() string {
	switch t {
	case LocationMainWarehouse:
		return "Bodega Principal"
	case LocationFixedPoint:
		return "Punto Fijo"
	case LocationTempPoint:
		return "Punto Temporal"
	case LocationIndirectPoint:
		return "Punto Indirecto"
	case LocationWebChannel:
		return "Canal Web"
	}
	return string(t)
}

// Location representa una ubicación donde se almacena o vende inventario.
// El nombre es único. Debe existir exactamente una bodega_principal activa
// para que las cargas masivas funcionen (convención operativa, se verifica
// al importar, no con constraint).
type Location struct {
	ID     int64
	Name   string
	Type   LocationType
	Active bool
}
