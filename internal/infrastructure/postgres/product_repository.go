package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `cod_venta, descripcion, precio, costo, id_fabrica, stock_minimo, stock_critico, stock_maximo`

// Upsert inserta o actualiza por cod_venta. Los umbrales de stock se
// conservan si la fila ya existe: la carga masiva no los pisa.
func (r *ProductRepo) Upsert(product *entity.Product) error {
	query := `
		INSERT INTO productos (cod_venta, descripcion, precio, costo, id_fabrica, stock_minimo, stock_critico, stock_maximo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (cod_venta)
		DO UPDATE SET descripcion = EXCLUDED.descripcion, precio = EXCLUDED.precio,
		              costo = EXCLUDED.costo, id_fabrica = EXCLUDED.id_fabrica`
	_, err := r.q.Exec(context.Background(), query,
		product.SaleCode, product.Description, product.Price, product.Cost,
		product.FactoryID, product.MinStock, product.CriticalStock, product.MaxStock,
	)
	if err != nil {
		return fmt.Errorf("upsert producto: %w", err)
	}
	return nil
}

// Save inserta o actualiza todos los campos, umbrales incluidos.
func (r *ProductRepo) Save(product *entity.Product) error {
	query := `
		INSERT INTO productos (cod_venta, descripcion, precio, costo, id_fabrica, stock_minimo, stock_critico, stock_maximo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (cod_venta)
		DO UPDATE SET descripcion = EXCLUDED.descripcion, precio = EXCLUDED.precio,
		              costo = EXCLUDED.costo, id_fabrica = EXCLUDED.id_fabrica,
		              stock_minimo = EXCLUDED.stock_minimo, stock_critico = EXCLUDED.stock_critico,
		              stock_maximo = EXCLUDED.stock_maximo`
	_, err := r.q.Exec(context.Background(), query,
		product.SaleCode, product.Description, product.Price, product.Cost,
		product.FactoryID, product.MinStock, product.CriticalStock, product.MaxStock,
	)
	if err != nil {
		return fmt.Errorf("save producto: %w", err)
	}
	return nil
}

// GetBySaleCode obtiene un producto por código de venta.
func (r *ProductRepo) GetBySaleCode(saleCode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos WHERE cod_venta = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, saleCode).Scan(
		&p.SaleCode, &p.Description, &p.Price, &p.Cost, &p.FactoryID,
		&p.MinStock, &p.CriticalStock, &p.MaxStock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// List lista productos con paginación, ordenados por código de venta.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM productos ORDER BY cod_venta LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Search busca por subcadena en cod_venta o id_fabrica, sin distinguir mayúsculas.
func (r *ProductRepo) Search(query string, limit int) ([]*entity.Product, error) {
	sql := `
		SELECT ` + productColumns + ` FROM productos
		WHERE cod_venta ILIKE '%' || $1 || '%' OR id_fabrica ILIKE '%' || $1 || '%'
		ORDER BY cod_venta LIMIT $2`
	rows, err := r.q.Query(context.Background(), sql, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search productos: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Delete elimina el producto. El stock y los movimientos que lo referencian
// caen en cascada (ON DELETE CASCADE en el esquema).
func (r *ProductRepo) Delete(saleCode string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE cod_venta = $1`, saleCode)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.SaleCode, &p.Description, &p.Price, &p.Cost, &p.FactoryID,
			&p.MinStock, &p.CriticalStock, &p.MaxStock,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
