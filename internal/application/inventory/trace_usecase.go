package inventory

import (
	"context"

	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/kardex"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// TraceUseCase reconstruye el Kardex de un producto a partir del libro de
// movimientos y del stock actual por ubicación.
type TraceUseCase struct {
	productRepo  repository.ProductRepository
	movRepo      repository.MovementRepository
	stockRepo    repository.StockRepository
	userRepo     repository.UserRepository
	locationRepo repository.LocationRepository
}

// NewTraceUseCase construye el caso de uso de trazabilidad.
func NewTraceUseCase(
	productRepo repository.ProductRepository,
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	userRepo repository.UserRepository,
	locationRepo repository.LocationRepository,
) *TraceUseCase {
	return &TraceUseCase{
		productRepo:  productRepo,
		movRepo:      movRepo,
		stockRepo:    stockRepo,
		userRepo:     userRepo,
		locationRepo: locationRepo,
	}
}

// Trace devuelve stock inicial, stock actual y la historia cronológica del
// producto con el saldo corrido por movimiento.
func (uc *TraceUseCase) Trace(ctx context.Context, saleCode string) (*dto.KardexResponse, error) {
	product, err := uc.productRepo.GetBySaleCode(saleCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	movements, err := uc.movRepo.ListByProductAsc(saleCode)
	if err != nil {
		return nil, err
	}
	current, err := uc.stockRepo.TotalByProduct(saleCode)
	if err != nil {
		return nil, err
	}

	trace, err := kardex.Build(current, movements)
	if err != nil {
		return nil, err
	}

	out := &dto.KardexResponse{
		ProductSaleCode:    product.SaleCode,
		ProductDescription: product.Description,
		InitialStock:       trace.InitialStock,
		CurrentStock:       trace.CurrentStock,
		Movements:          make([]dto.KardexMovementDTO, 0, len(trace.Entries)),
	}
	for _, e := range trace.Entries {
		out.Movements = append(out.Movements, dto.KardexMovementDTO{
			ID:             e.Movement.ID,
			Type:           string(e.Movement.Type),
			TypeLabel:      e.Movement.Type.Label(),
			Quantity:       e.Movement.Quantity,
			Timestamp:      e.Movement.Timestamp.Format("2006-01-02 15:04:05"),
			User:           uc.userName(e.Movement.UserID),
			Origin:         uc.locationName(e.Movement.OriginID),
			Destination:    uc.locationName(e.Movement.DestinationID),
			Detail:         e.Movement.Detail,
			ResultingStock: e.ResultingStock,
		})
	}
	return out, nil
}

// userName resuelve el nombre del usuario; nulo o borrado = "Sistema".
func (uc *TraceUseCase) userName(id *string) string {
	if id == nil {
		return "Sistema"
	}
	u, err := uc.userRepo.GetByID(*id)
	if err != nil || u == nil {
		return "Sistema"
	}
	return u.Username
}

// locationName resuelve el nombre de la ubicación; nulo o borrada = "N/A".
func (uc *TraceUseCase) locationName(id *int64) string {
	if id == nil {
		return "N/A"
	}
	loc, err := uc.locationRepo.GetByID(*id)
	if err != nil || loc == nil {
		return "N/A"
	}
	return loc.Name
}
