package usecase

import (
	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones. Desactivar una
// ubicación la excluye de la resolución por nombre de las cargas masivas;
// no se borra la historia.
type LocationUseCase struct {
	repo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo}
}

// Create registra una nueva ubicación activa.
func (uc *LocationUseCase) Create(in dto.SaveLocationRequest) (*dto.LocationResponse, error) {
	t := entity.LocationType(in.Type)
	if in.Name == "" || !t.Valid() {
		return nil, domain.ErrInvalidInput
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	loc := &entity.Location{Name: in.Name, Type: t, Active: active}
	if err := uc.repo.Create(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// Update modifica nombre, tipo o bandera de actividad.
func (uc *LocationUseCase) Update(id int64, in dto.SaveLocationRequest) (*dto.LocationResponse, error) {
	loc, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		loc.Name = in.Name
	}
	if in.Type != "" {
		t := entity.LocationType(in.Type)
		if !t.Valid() {
			return nil, domain.ErrInvalidInput
		}
		loc.Type = t
	}
	if in.Active != nil {
		loc.Active = *in.Active
	}
	if err := uc.repo.Update(loc); err != nil {
		return nil, err
	}
	return toLocationResponse(loc), nil
}

// List lista todas las ubicaciones.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	locations, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, *toLocationResponse(l))
	}
	return out, nil
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		ID:        l.ID,
		Name:      l.Name,
		Type:      string(l.Type),
		TypeLabel: l.Type.Label(),
		Active:    l.Active,
	}
}
