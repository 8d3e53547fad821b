package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-kardex/internal/application/analytics"
	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
)

// DashboardHandler maneja el dashboard ejecutivo (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Data godoc
// @Summary      Datos del dashboard ejecutivo
// @Description  Ventas mensuales, top de productos vendidos y stock por ubicación.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Data(c *fiber.Ctx) error {
	out, err := h.uc.Data(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
