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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una nueva ubicación y rellena el ID asignado.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO ubicaciones (nombre, tipo, activa)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		location.Name, location.Type, location.Active,
	).Scan(&location.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert ubicacion: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *LocationRepo) GetByID(id int64) (*entity.Location, error) {
	query := `SELECT id, nombre, tipo, activa FROM ubicaciones WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id).Scan(&l.ID, &l.Name, &l.Type, &l.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ubicacion: %w", err)
	}
	return &l, nil
}

// GetActiveByName resuelve una ubicación activa por nombre exacto.
func (r *LocationRepo) GetActiveByName(name string) (*entity.Location, error) {
	query := `SELECT id, nombre, tipo, activa FROM ubicaciones WHERE nombre = $1 AND activa`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, name).Scan(&l.ID, &l.Name, &l.Type, &l.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ubicacion por nombre: %w", err)
	}
	return &l, nil
}

// MainWarehouse devuelve la única bodega_principal activa. La cardinalidad
// se valida aquí porque el esquema no la puede expresar.
func (r *LocationRepo) MainWarehouse() (*entity.Location, error) {
	query := `SELECT id, nombre, tipo, activa FROM ubicaciones WHERE tipo = $1 AND activa`
	rows, err := r.q.Query(context.Background(), query, entity.LocationMainWarehouse)
	if err != nil {
		return nil, fmt.Errorf("get bodega principal: %w", err)
	}
	defer rows.Close()

	var found []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Type, &l.Active); err != nil {
			return nil, fmt.Errorf("scan bodega principal: %w", err)
		}
		found = append(found, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(found) {
	case 0:
		return nil, domain.ErrNoMainWarehouse
	case 1:
		return found[0], nil
	default:
		return nil, domain.ErrManyMainWarehouses
	}
}

// List lista todas las ubicaciones ordenadas por nombre.
func (r *LocationRepo) List() ([]*entity.Location, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, tipo, activa FROM ubicaciones ORDER BY nombre`)
	if err != nil {
		return nil, fmt.Errorf("list ubicaciones: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Type, &l.Active); err != nil {
			return nil, fmt.Errorf("scan ubicacion: %w", err)
		}
		locations = append(locations, &l)
	}
	return locations, rows.Err()
}

// Update actualiza nombre, tipo y bandera de actividad.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `UPDATE ubicaciones SET nombre = $2, tipo = $3, activa = $4 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Type, location.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update ubicacion: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
