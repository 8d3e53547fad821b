package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL. El
// libro es sólo-inserción: no hay Update ni Delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador del libro de movimientos. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste el movimiento y rellena ID y fecha asignados por el servidor.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movimientos (cod_venta, tipo, cantidad, usuario_id, ubicacion_origen_id, ubicacion_destino_id, detalle)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fecha_hora`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductCode, movement.Type, movement.Quantity,
		movement.UserID, movement.OriginID, movement.DestinationID, movement.Detail,
	).Scan(&movement.ID, &movement.Timestamp)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// ListByProductAsc devuelve la historia completa del producto en orden
// cronológico ascendente; el ID creciente desempata timestamps iguales.
func (r *MovementRepo) ListByProductAsc(productCode string) ([]*entity.Movement, error) {
	query := `
		SELECT id, cod_venta, tipo, cantidad, fecha_hora, usuario_id, ubicacion_origen_id, ubicacion_destino_id, detalle
		FROM movimientos
		WHERE cod_venta = $1
		ORDER BY fecha_hora, id`
	rows, err := r.q.Query(context.Background(), query, productCode)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var movements []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.ProductCode, &m.Type, &m.Quantity, &m.Timestamp,
			&m.UserID, &m.OriginID, &m.DestinationID, &m.Detail,
		); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// Search aplica los filtros del reporte avanzado y resuelve los nombres de
// usuario y ubicaciones en la misma consulta. Los filtros por fecha comparan
// fecha calendario (fecha_hora::date), inclusivos en ambos extremos.
func (r *MovementRepo) Search(filter repository.MovementFilter) ([]*repository.MovementReportRow, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.DateFrom != nil {
		conds = append(conds, "m.fecha_hora::date >= "+arg(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		conds = append(conds, "m.fecha_hora::date <= "+arg(*filter.DateTo))
	}
	if filter.ProductCode != "" {
		conds = append(conds, "m.cod_venta ILIKE '%' || "+arg(filter.ProductCode)+" || '%'")
	}
	if filter.Type != "" {
		conds = append(conds, "m.tipo = "+arg(filter.Type))
	}
	if filter.LocationID != nil {
		p := arg(*filter.LocationID)
		conds = append(conds, "(m.ubicacion_origen_id = "+p+" OR m.ubicacion_destino_id = "+p+")")
	}

	query := `
		SELECT m.id, m.cod_venta, m.tipo, m.cantidad, m.fecha_hora,
		       m.usuario_id, m.ubicacion_origen_id, m.ubicacion_destino_id, m.detalle,
		       COALESCE(p.descripcion, ''), u.username, uo.nombre, ud.nombre
		FROM movimientos m
		LEFT JOIN productos p ON p.cod_venta = m.cod_venta
		LEFT JOIN usuarios u ON u.id = m.usuario_id
		LEFT JOIN ubicaciones uo ON uo.id = m.ubicacion_origen_id
		LEFT JOIN ubicaciones ud ON ud.id = m.ubicacion_destino_id`
	if len(conds) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conds, " AND ")
	}
	query += "\n\t\tORDER BY m.fecha_hora DESC, m.id DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search movimientos: %w", err)
	}
	defer rows.Close()
	return scanReportRows(rows)
}

func scanReportRows(rows pgx.Rows) ([]*repository.MovementReportRow, error) {
	var results []*repository.MovementReportRow
	for rows.Next() {
		var row repository.MovementReportRow
		if err := rows.Scan(
			&row.Movement.ID, &row.Movement.ProductCode, &row.Movement.Type,
			&row.Movement.Quantity, &row.Movement.Timestamp, &row.Movement.UserID,
			&row.Movement.OriginID, &row.Movement.DestinationID, &row.Movement.Detail,
			&row.ProductDescription, &row.Username, &row.OriginName, &row.DestinationName,
		); err != nil {
			return nil, fmt.Errorf("scan fila de reporte: %w", err)
		}
		results = append(results, &row)
	}
	return results, rows.Err()
}
