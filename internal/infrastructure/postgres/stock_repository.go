package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto en una ubicación. Si la fila no
// existe devuelve cantidad 0.
func (r *StockRepo) Get(productCode string, locationID int64) (*entity.Stock, error) {
	query := `
		SELECT cod_venta, ubicacion_id, cantidad, updated_at
		FROM stock WHERE cod_venta = $1 AND ubicacion_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productCode, locationID).Scan(
		&s.ProductCode, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductCode: productCode, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el stock y bloquea la fila (SELECT FOR UPDATE) para
// serializar escritores concurrentes sobre el mismo par producto-ubicación.
func (r *StockRepo) GetForUpdate(productCode string, locationID int64) (*entity.Stock, error) {
	query := `
		SELECT cod_venta, ubicacion_id, cantidad, updated_at
		FROM stock WHERE cod_venta = $1 AND ubicacion_id = $2
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productCode, locationID).Scan(
		&s.ProductCode, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductCode: productCode, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por producto y ubicación).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (cod_venta, ubicacion_id, cantidad, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (cod_venta, ubicacion_id)
		DO UPDATE SET cantidad = EXCLUDED.cantidad, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductCode, stock.LocationID, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// AddQuantity suma qty sobre la fila con un upsert por delta. A diferencia de
// Upsert, dos transacciones concurrentes que crean la misma fila terminan
// sumando ambas cantidades: la segunda queda bloqueada en el ON CONFLICT hasta
// el commit de la primera y suma sobre el valor ya confirmado.
func (r *StockRepo) AddQuantity(productCode string, locationID, qty int64) error {
	query := `
		INSERT INTO stock (cod_venta, ubicacion_id, cantidad, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (cod_venta, ubicacion_id)
		DO UPDATE SET cantidad = stock.cantidad + EXCLUDED.cantidad, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, productCode, locationID, qty)
	if err != nil {
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// TotalByProduct suma el stock del producto en todas las ubicaciones.
func (r *StockRepo) TotalByProduct(productCode string) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(cantidad), 0) FROM stock WHERE cod_venta = $1`,
		productCode,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total stock producto: %w", err)
	}
	return total, nil
}

// ByLocation lista el stock agregado por ubicación (dashboard).
func (r *StockRepo) ByLocation() ([]*repository.LocationStockResult, error) {
	query := `
		SELECT u.nombre, COALESCE(SUM(s.cantidad), 0) AS total
		FROM ubicaciones u
		LEFT JOIN stock s ON s.ubicacion_id = u.id
		WHERE u.activa
		GROUP BY u.nombre
		ORDER BY total DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("stock por ubicacion: %w", err)
	}
	defer rows.Close()

	var results []*repository.LocationStockResult
	for rows.Next() {
		var res repository.LocationStockResult
		if err := rows.Scan(&res.LocationName, &res.TotalStock); err != nil {
			return nil, fmt.Errorf("scan stock por ubicacion: %w", err)
		}
		results = append(results, &res)
	}
	return results, rows.Err()
}
