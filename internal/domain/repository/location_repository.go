package repository

import "github.com/tu-usuario/inventario-kardex/internal/domain/entity"

// LocationRepository define el puerto de persistencia para Location.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id int64) (*entity.Location, error)
	// GetActiveByName resuelve una ubicación activa por nombre exacto.
	// Devuelve nil si no existe o está inactiva.
	GetActiveByName(name string) (*entity.Location, error)
	// MainWarehouse devuelve la única bodega_principal activa.
	// ErrNoMainWarehouse si no hay ninguna; ErrManyMainWarehouses si hay más
	// de una (precondición de archivo para las cargas masivas).
	MainWarehouse() (*entity.Location, error)
	List() ([]*entity.Location, error)
	Update(location *entity.Location) error
}
