package repository

import "github.com/tu-usuario/inventario-kardex/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// La clave natural es el código de venta.
type ProductRepository interface {
	// Upsert inserta o actualiza por cod_venta: descripción, precio, costo e
	// id_fabrica. Los umbrales de stock se conservan si la fila ya existe
	// (la carga masiva no los pisa).
	Upsert(product *entity.Product) error
	// Save inserta o actualiza todos los campos, umbrales incluidos
	// (camino del administrador de catálogo).
	Save(product *entity.Product) error
	GetBySaleCode(saleCode string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	// Search busca por subcadena en cod_venta o id_fabrica, sin distinguir
	// mayúsculas.
	Search(query string, limit int) ([]*entity.Product, error)
	// Delete elimina el producto; el stock y los movimientos que lo
	// referencian caen en cascada (decisión de diseño explícita).
	Delete(saleCode string) error
}
