package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/application/report"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
)

// ReportHandler maneja el reporte avanzado de movimientos (protegido).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Movements godoc
// @Summary      Reporte de movimientos con filtros combinables
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        fecha_inicio     query  string  false  "AAAA-MM-DD, inclusive"
// @Param        fecha_fin        query  string  false  "AAAA-MM-DD, inclusive"
// @Param        producto_id      query  string  false  "Subcadena de cod_venta"
// @Param        tipo_movimiento  query  string  false  "Tipo exacto de movimiento"
// @Param        ubicacion_id     query  int     false  "Coincide con origen o destino"
// @Success      200  {array}   dto.ReportRowDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/movimientos [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	var in dto.ReportFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	out, err := h.uc.Search(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
