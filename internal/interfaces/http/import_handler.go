package http

import (
	"errors"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/application/importer"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
)

// ImportHandler maneja las cargas masivas por CSV (protegido, perfil opera).
// Los tres endpoints reciben multipart/form-data con el campo "file".
type ImportHandler struct {
	processor *importer.Processor
}

// NewImportHandler construye el handler.
func NewImportHandler(processor *importer.Processor) *ImportHandler {
	return &ImportHandler{processor: processor}
}

// InitialLoad godoc
// @Summary      Carga inicial de catálogo y stock
// @Description  Upsert de productos y línea base de stock en la bodega principal. No genera movimientos.
// @Tags         importar
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV con columnas id_venta, price, cost, id_fabrica, qty, description"
// @Success      200   {object}  dto.BatchResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/importar/carga-inicial [post]
func (h *ImportHandler) InitialLoad(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo CSV requerido en el campo 'file'"})
	}
	return h.run(c, fh, func(file multipart.File) (*importer.BatchResult, error) {
		return h.processor.InitialLoad(c.Context(), file)
	})
}

// Transfers godoc
// @Summary      Carga masiva de traslados desde bodega principal
// @Description  El destino se deriva del nombre del archivo: tras_bod_LUGAR_FECHA.csv.
// @Tags         importar
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV con columnas cod_venta, cantidad"
// @Success      200   {object}  dto.BatchResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/importar/traslados [post]
func (h *ImportHandler) Transfers(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo CSV requerido en el campo 'file'"})
	}
	userID := GetUserID(c)
	return h.run(c, fh, func(file multipart.File) (*importer.BatchResult, error) {
		return h.processor.TransferBatch(c.Context(), fh.Filename, file, &userID)
	})
}

// DailySales godoc
// @Summary      Carga masiva de ventas diarias
// @Description  La ubicación se deriva del nombre del archivo: LUGAR_FECHA.csv (guiones bajos = espacios). Una unidad vendida por fila.
// @Tags         importar
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV con columna cod_venta"
// @Success      200   {object}  dto.BatchResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/importar/ventas-diarias [post]
func (h *ImportHandler) DailySales(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo CSV requerido en el campo 'file'"})
	}
	userID := GetUserID(c)
	return h.run(c, fh, func(file multipart.File) (*importer.BatchResult, error) {
		return h.processor.DailySales(c.Context(), fh.Filename, file, &userID)
	})
}

func (h *ImportHandler) run(c *fiber.Ctx, fh *multipart.FileHeader, process func(multipart.File) (*importer.BatchResult, error)) error {
	file, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_FILE", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	result, err := process(file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNoMainWarehouse), errors.Is(err, domain.ErrManyMainWarehouses):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "MAIN_WAREHOUSE", Message: err.Error()})
		case errors.Is(err, domain.ErrInactiveLocation), errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_LOCATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.BatchResultResponse{
		Message:   result.Message,
		Processed: result.Processed,
		Errors:    result.Errors,
	})
}
