package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-kardex/internal/application/inventory"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
	"github.com/tu-usuario/inventario-kardex/pkg/logger"
)

// Columnas obligatorias por tipo de lote.
var (
	initialLoadColumns = []string{"id_venta", "price", "cost", "id_fabrica", "qty", "description"}
	transferColumns    = []string{"cod_venta", "price", "qty", "description"}
	salesColumns       = []string{"timestamp", "lugar", "id_fabrica", "id_venta", "description", "price"}
)

// Processor procesa los lotes de carga masiva. Cada lote corre dentro de UNA
// transacción (atómico ante fallos de infraestructura) pero las reglas de
// negocio que fallan por fila se registran y la fila se salta sin deshacer
// las filas anteriores: lote tolerante a fallas parciales.
type Processor struct {
	txRunner     inventory.TxRunner
	engine       *inventory.RegisterMovementUseCase
	locationRepo repository.LocationRepository
	log          *logger.Logger
}

// NewProcessor construye el procesador de cargas masivas.
func NewProcessor(
	txRunner inventory.TxRunner,
	engine *inventory.RegisterMovementUseCase,
	locationRepo repository.LocationRepository,
	log *logger.Logger,
) *Processor {
	return &Processor{txRunner: txRunner, engine: engine, locationRepo: locationRepo, log: log}
}

// BatchResult filas procesadas con éxito y errores por fila, en orden.
type BatchResult struct {
	Message   string
	Processed int
	Errors    []string
}

// InitialLoad procesa la carga inicial de inventario. Por fila: valida el
// código de venta (8 caracteres), upsert del producto y fija la cantidad en
// la bodega principal como línea base. No crea movimientos: la carga inicial
// establece una foto de partida, no un evento del libro. Reejecutar el mismo
// archivo es idempotente.
func (p *Processor) InitialLoad(ctx context.Context, file io.Reader) (*BatchResult, error) {
	main, err := p.locationRepo.MainWarehouse()
	if err != nil {
		return nil, err
	}
	tbl, err := openCSV(file, initialLoadColumns)
	if err != nil {
		return nil, err
	}

	res := &BatchResult{Errors: []string{}}
	err = p.txRunner.Run(ctx, func(
		_ repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		now := time.Now()
		return p.forEachRow(tbl, res, func(r *row) error {
			code, err := r.get("id_venta")
			if err != nil {
				return rowError(err.Error())
			}
			if !entity.ValidSaleCode(code) {
				return rowError("el código de venta 'id_venta' debe tener 8 caracteres")
			}
			price, cost, err := parsePriceCost(r)
			if err != nil {
				return err
			}
			qty, err := parseQty(r, "qty", 0)
			if err != nil {
				return err
			}
			desc, _ := r.get("description")
			factoryID, _ := r.get("id_fabrica")

			if err := productRepo.Upsert(&entity.Product{
				SaleCode:    code,
				Description: desc,
				Price:       price,
				Cost:        cost,
				FactoryID:   factoryID,
			}); err != nil {
				return err
			}
			return stockRepo.Upsert(&entity.Stock{
				ProductCode: code,
				LocationID:  main.ID,
				Quantity:    qty,
				UpdatedAt:   now,
			})
		})
	})
	if err != nil {
		return nil, err
	}
	res.Message = fmt.Sprintf("Carga completada. %d productos procesados.", res.Processed)
	p.log.Info().Int("procesadas", res.Processed).Int("errores", len(res.Errors)).
		Msg("carga inicial finalizada")
	return res, nil
}

// TransferBatch procesa un lote de traslado bodega → destino. El destino se
// resuelve del nombre del archivo (tras_bod_LUGAR_FECHA.csv) y debe existir
// activo ANTES de tocar cualquier fila; si no, el lote completo se rechaza
// sin efectos. Por fila se mueve qty desde la bodega principal con un único
// registro transferencia_salida que lleva origen y destino.
func (p *Processor) TransferBatch(ctx context.Context, filename string, file io.Reader, userID *string) (*BatchResult, error) {
	place, err := ParseTransferFilename(filename)
	if err != nil {
		return nil, err
	}
	dest, err := p.locationRepo.GetActiveByName(place)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, fmt.Errorf("%w: la ubicación destino %q no existe o no está activa", domain.ErrInactiveLocation, place)
	}
	main, err := p.locationRepo.MainWarehouse()
	if err != nil {
		return nil, err
	}
	tbl, err := openCSV(file, transferColumns)
	if err != nil {
		return nil, err
	}

	res := &BatchResult{Errors: []string{}}
	detail := fmt.Sprintf("Transferencia masiva desde %s", main.Name)
	err = p.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		return p.forEachRow(tbl, res, func(r *row) error {
			code, err := r.get("cod_venta")
			if err != nil {
				return rowError(err.Error())
			}
			product, err := productRepo.GetBySaleCode(code)
			if err != nil {
				return err
			}
			if product == nil {
				return rowError("el producto %q no existe", code)
			}
			qty, err := parseQty(r, "qty", 1)
			if err != nil {
				return err
			}
			_, err = p.engine.RegisterInTx(movRepo, stockRepo, inventory.MovementInput{
				SaleCode:      code,
				Type:          entity.MovementTransferOut,
				Quantity:      qty,
				UserID:        userID,
				OriginID:      &main.ID,
				DestinationID: &dest.ID,
				Detail:        detail,
			}, time.Now())
			if errors.Is(err, domain.ErrInsufficientStock) {
				return rowError("stock insuficiente en bodega para %q: se intenta transferir %d", code, qty)
			}
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	res.Message = fmt.Sprintf("Transferencia completada. %d productos movidos a %q.", res.Processed, dest.Name)
	p.log.Info().Str("destino", dest.Name).Int("procesadas", res.Processed).
		Int("errores", len(res.Errors)).Msg("lote de traslado finalizado")
	return res, nil
}

// DailySales procesa un lote de ventas diarias. La ubicación se resuelve del
// nombre del archivo (LUGAR_FECHA.csv, guiones bajos = espacios) como
// precondición de archivo. Cada fila es exactamente UNA unidad vendida; la
// columna qty no existe en este formato y jamás se lee una cantidad.
func (p *Processor) DailySales(ctx context.Context, filename string, file io.Reader, userID *string) (*BatchResult, error) {
	place, err := ParseSalesFilename(filename)
	if err != nil {
		return nil, err
	}
	loc, err := p.locationRepo.GetActiveByName(place)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: la ubicación de venta %q no existe o no está activa", domain.ErrInactiveLocation, place)
	}
	tbl, err := openCSV(file, salesColumns)
	if err != nil {
		return nil, err
	}

	res := &BatchResult{Errors: []string{}}
	err = p.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		stockRepo repository.StockRepository,
		productRepo repository.ProductRepository,
	) error {
		return p.forEachRow(tbl, res, func(r *row) error {
			code, err := r.get("id_venta")
			if err != nil {
				return rowError(err.Error())
			}
			product, err := productRepo.GetBySaleCode(code)
			if err != nil {
				return err
			}
			if product == nil {
				return rowError("el producto %q no existe", code)
			}
			_, err = p.engine.RegisterInTx(movRepo, stockRepo, inventory.MovementInput{
				SaleCode: code,
				Type:     entity.MovementSale,
				Quantity: 1,
				UserID:   userID,
				OriginID: &loc.ID,
				Detail:   "Venta diaria registrada desde CSV.",
			}, time.Now())
			if errors.Is(err, domain.ErrInsufficientStock) {
				return rowError("stock insuficiente de %q en %q", code, loc.Name)
			}
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	res.Message = fmt.Sprintf("Ventas diarias procesadas. %d unidades vendidas en %q.", res.Processed, loc.Name)
	p.log.Info().Str("ubicacion", loc.Name).Int("procesadas", res.Processed).
		Int("errores", len(res.Errors)).Msg("lote de ventas finalizado")
	return res, nil
}

// forEachRow es el fold del lote: procesa cada fila de forma independiente,
// acumula errores de negocio como "Error en fila N" (N cuenta el encabezado
// como fila 1) y sólo propaga errores de infraestructura, que abortan la
// transacción del lote completo.
func (p *Processor) forEachRow(tbl *table, res *BatchResult, handle func(*row) error) error {
	line := 1 // encabezado
	for {
		line++
		r, err := tbl.next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Error en fila %d: %v", line, err))
			continue
		}
		if err := handle(r); err != nil {
			var re *rowErr
			if errors.As(err, &re) {
				res.Errors = append(res.Errors, fmt.Sprintf("Error en fila %d: %s", line, re.msg))
				continue
			}
			return err
		}
		res.Processed++
	}
}

// rowErr error de regla de negocio de una fila: se registra y se salta.
type rowErr struct{ msg string }

func (e *rowErr) Error() string { return e.msg }

func rowError(format string, args ...any) error {
	return &rowErr{msg: fmt.Sprintf(format, args...)}
}

func parsePriceCost(r *row) (price, cost decimal.Decimal, err error) {
	rawPrice, err := r.get("price")
	if err != nil {
		return decimal.Zero, decimal.Zero, rowError(err.Error())
	}
	price, err = decimal.NewFromString(rawPrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, rowError("precio inválido %q", rawPrice)
	}
	rawCost, err := r.get("cost")
	if err != nil {
		return decimal.Zero, decimal.Zero, rowError(err.Error())
	}
	cost, err = decimal.NewFromString(rawCost)
	if err != nil {
		return decimal.Zero, decimal.Zero, rowError("costo inválido %q", rawCost)
	}
	return price, cost, nil
}

func parseQty(r *row, col string, min int64) (int64, error) {
	raw, err := r.get(col)
	if err != nil {
		return 0, rowError(err.Error())
	}
	qty, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || qty < min {
		return 0, rowError("cantidad inválida %q", raw)
	}
	return qty, nil
}
