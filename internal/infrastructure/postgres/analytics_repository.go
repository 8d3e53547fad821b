package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard ejecutivo.
// Lee directo del pool: nunca participa en transacciones.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// MonthlySales agrupa las unidades vendidas (tipo venta) por mes calendario,
// en orden cronológico.
func (r *AnalyticsRepo) MonthlySales(ctx context.Context) ([]repository.MonthlySalesResult, error) {
	const query = `
	SELECT to_char(DATE_TRUNC('month', fecha_hora), 'YYYY-MM') AS mes,
	       SUM(cantidad)                                       AS total
	FROM movimientos
	WHERE tipo = 'venta'
	GROUP BY 1
	ORDER BY 1`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("analytics.MonthlySales: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlySalesResult
	for rows.Next() {
		var row repository.MonthlySalesResult
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("analytics.MonthlySales scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopSoldProducts devuelve los productos con más unidades vendidas.
func (r *AnalyticsRepo) TopSoldProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	const query = `
	SELECT m.cod_venta,
	       COALESCE(p.descripcion, '') AS descripcion,
	       SUM(m.cantidad)             AS total_vendido
	FROM movimientos m
	LEFT JOIN productos p ON p.cod_venta = m.cod_venta
	WHERE m.tipo = 'venta'
	GROUP BY m.cod_venta, p.descripcion
	ORDER BY total_vendido DESC
	LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopSoldProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.SaleCode, &row.Description, &row.TotalSold); err != nil {
			return nil, fmt.Errorf("analytics.TopSoldProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
