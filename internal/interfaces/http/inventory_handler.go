package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/application/inventory"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
)

// InventoryHandler maneja movimientos manuales y el Kardex (protegido).
type InventoryHandler struct {
	engine *inventory.RegisterMovementUseCase
	trace  *inventory.TraceUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *inventory.RegisterMovementUseCase, trace *inventory.TraceUseCase) *InventoryHandler {
	return &InventoryHandler{engine: engine, trace: trace}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Description  Cantidad siempre en positivo; la dirección la determina el tipo.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "cod_venta, tipo, cantidad, ubicaciones según el tipo"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventario/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	userID := GetUserID(c)
	input := inventory.MovementInput{
		SaleCode:      in.SaleCode,
		Type:          entity.MovementType(in.Type),
		Quantity:      in.Quantity,
		UserID:        &userID,
		OriginID:      in.OriginID,
		DestinationID: in.DestinationID,
		Detail:        in.Detail,
	}
	mov, err := h.engine.RegisterMovement(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "movimiento inválido: revise tipo, cantidad y ubicaciones"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o ubicación no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente en la ubicación de origen"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(h.engine.Response(mov, GetUsername(c)))
}

// Kardex godoc
// @Summary      Trazabilidad completa de un producto (Kardex)
// @Description  Stock inicial retro-calculado, historia cronológica con saldo corrido y stock actual.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        cod_venta  path  string  true  "Código de venta"
// @Success      200  {object}  dto.KardexResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/kardex/{cod_venta} [get]
func (h *InventoryHandler) Kardex(c *fiber.Ctx) error {
	out, err := h.trace.Trace(c.Context(), c.Params("cod_venta"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
