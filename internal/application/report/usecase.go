package report

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// UseCase genera reportes de movimientos con filtros dinámicos opcionales:
// rango de fechas (por fecha calendario, inclusive), subcadena de código de
// producto, tipo de movimiento y ubicación (origen o destino). Siempre del
// más reciente al más antiguo.
type UseCase struct {
	movRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso de reportes.
func NewUseCase(movRepo repository.MovementRepository) *UseCase {
	return &UseCase{movRepo: movRepo}
}

// Search valida los filtros, consulta y arma las filas con el vocabulario de
// tipos intacto más su etiqueta legible.
func (uc *UseCase) Search(ctx context.Context, in dto.ReportFilterRequest) ([]dto.ReportRowDTO, error) {
	filter := repository.MovementFilter{
		ProductCode: in.ProductCode,
		LocationID:  in.LocationID,
	}

	if in.DateFrom != "" {
		d, err := time.Parse("2006-01-02", in.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_inicio debe ser AAAA-MM-DD", domain.ErrInvalidInput)
		}
		filter.DateFrom = &d
	}
	if in.DateTo != "" {
		d, err := time.Parse("2006-01-02", in.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: fecha_fin debe ser AAAA-MM-DD", domain.ErrInvalidInput)
		}
		filter.DateTo = &d
	}
	if in.Type != "" {
		t := entity.MovementType(in.Type)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: tipo_movimiento desconocido %q", domain.ErrInvalidInput, in.Type)
		}
		filter.Type = t
	}

	rows, err := uc.movRepo.Search(filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReportRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReportRowDTO{
			ID:          r.Movement.ID,
			Timestamp:   r.Movement.Timestamp.Format("2006-01-02 15:04:05"),
			ProductCode: r.Movement.ProductCode,
			ProductDesc: r.ProductDescription,
			Type:        string(r.Movement.Type),
			TypeLabel:   r.Movement.Type.Label(),
			Quantity:    r.Movement.Quantity,
			User:        orDefault(r.Username, "Sistema"),
			Origin:      orDefault(r.OriginName, "N/A"),
			Destination: orDefault(r.DestinationName, "N/A"),
			Detail:      r.Movement.Detail,
		})
	}
	return out, nil
}

func orDefault(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}
