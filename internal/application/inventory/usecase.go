package inventory

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// RegisterMovementUseCase es el motor de movimientos: registra eventos de
// stock de forma transaccional con bloqueo de fila (SELECT FOR UPDATE) y
// Commit/Rollback. El libro de movimientos es el sistema de registro; la
// tabla de stock es la proyección que este motor mantiene consistente.
type RegisterMovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// MovementInput entrada para registrar un movimiento. Quantity siempre en
// positivo (magnitud); la dirección la da el tipo. Entradas usan
// DestinationID, salidas OriginID, transferencia_salida ambas.
type MovementInput struct {
	SaleCode      string
	Type          entity.MovementType
	Quantity      int64
	UserID        *string
	OriginID      *int64
	DestinationID *int64
	Detail        string
}

// RegisterMovement valida la entrada, abre la transacción y aplica el efecto
// del movimiento sobre el stock antes de anotar el registro. Devuelve el
// movimiento persistido con ID y fecha asignados por el servidor.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*entity.Movement, error) {
	if err := uc.validate(input); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetBySaleCode(input.SaleCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.checkLocations(input); err != nil {
		return nil, err
	}

	var mov *entity.Movement
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		_ repository.ProductRepository,
	) error {
		mov, err = uc.RegisterInTx(movRepo, stockRepo, input, time.Now())
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RegisterInTx aplica el movimiento usando repositorios ya atados a la
// transacción del caller (la carga masiva procesa todo el lote dentro de un
// único scope y llama aquí por fila). Bloquea la fila de stock del lado que
// decrementa; nunca deja una cantidad negativa.
func (uc *RegisterMovementUseCase) RegisterInTx(
	movRepo repository.MovementRepository,
	stockRepo repository.StockRepository,
	input MovementInput,
	now time.Time,
) (*entity.Movement, error) {
	sign, ok := input.Type.Sign()
	if !ok {
		return nil, domain.ErrInvalidInput
	}

	switch {
	case input.Type == entity.MovementTransferOut && input.DestinationID != nil:
		// Traslado: resta en origen y suma en destino bajo el mismo scope;
		// un solo registro lleva ambas ubicaciones.
		if err := uc.subtract(stockRepo, input.SaleCode, *input.OriginID, input.Quantity, now); err != nil {
			return nil, err
		}
		if err := uc.add(stockRepo, input.SaleCode, *input.DestinationID, input.Quantity, now); err != nil {
			return nil, err
		}
	case sign < 0:
		if err := uc.subtract(stockRepo, input.SaleCode, *input.OriginID, input.Quantity, now); err != nil {
			return nil, err
		}
	default:
		if err := uc.add(stockRepo, input.SaleCode, *input.DestinationID, input.Quantity, now); err != nil {
			return nil, err
		}
	}

	mov := &entity.Movement{
		ProductCode:   input.SaleCode,
		Type:          input.Type,
		Quantity:      input.Quantity,
		Timestamp:     now,
		UserID:        input.UserID,
		OriginID:      input.OriginID,
		DestinationID: input.DestinationID,
		Detail:        input.Detail,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	return mov, nil
}

// subtract bloquea la fila, verifica que alcance y resta. ErrInsufficientStock
// deja el stock intacto (el caller decide si es error de fila o de operación).
func (uc *RegisterMovementUseCase) subtract(
	stockRepo repository.StockRepository,
	saleCode string, locationID, qty int64, now time.Time,
) error {
	stock, err := stockRepo.GetForUpdate(saleCode, locationID)
	if err != nil {
		return err
	}
	if stock.Quantity < qty {
		return domain.ErrInsufficientStock
	}
	stock.Quantity -= qty
	stock.UpdatedAt = now
	return stockRepo.Upsert(stock)
}

// add suma en destino con un upsert por delta. No pasa por SELECT FOR UPDATE:
// si la fila aún no existe no habría nada que bloquear, y dos entradas
// concurrentes leerían cero y se pisarían la una a la otra. El delta suma
// sobre lo ya confirmado sin importar quién creó la fila.
func (uc *RegisterMovementUseCase) add(
	stockRepo repository.StockRepository,
	saleCode string, locationID, qty int64, _ time.Time,
) error {
	return stockRepo.AddQuantity(saleCode, locationID, qty)
}

// Response arma la representación HTTP del movimiento con los nombres de
// ubicación resueltos. username es el del token del operador.
func (uc *RegisterMovementUseCase) Response(mov *entity.Movement, username string) *dto.MovementResponse {
	if username == "" {
		username = "Sistema"
	}
	name := func(id *int64) string {
		if id == nil {
			return "N/A"
		}
		loc, err := uc.locationRepo.GetByID(*id)
		if err != nil || loc == nil {
			return "N/A"
		}
		return loc.Name
	}
	return &dto.MovementResponse{
		ID:            mov.ID,
		SaleCode:      mov.ProductCode,
		Type:          string(mov.Type),
		TypeLabel:     mov.Type.Label(),
		Quantity:      mov.Quantity,
		Timestamp:     mov.Timestamp.Format("2006-01-02 15:04:05"),
		User:          username,
		Origin:        name(mov.OriginID),
		Destination:   name(mov.DestinationID),
		Detail:        mov.Detail,
		OriginID:      mov.OriginID,
		DestinationID: mov.DestinationID,
	}
}

func (uc *RegisterMovementUseCase) validate(input MovementInput) error {
	if input.SaleCode == "" || input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	sign, ok := input.Type.Sign()
	if !ok {
		return domain.ErrInvalidInput
	}
	if input.Type == entity.MovementTransferOut {
		if input.OriginID == nil {
			return domain.ErrInvalidInput
		}
		if input.DestinationID != nil && *input.OriginID == *input.DestinationID {
			return domain.ErrInvalidInput
		}
		return nil
	}
	if sign < 0 && input.OriginID == nil {
		return domain.ErrInvalidInput
	}
	if sign > 0 && input.DestinationID == nil {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *RegisterMovementUseCase) checkLocations(input MovementInput) error {
	for _, id := range []*int64{input.OriginID, input.DestinationID} {
		if id == nil {
			continue
		}
		loc, err := uc.locationRepo.GetByID(*id)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}
