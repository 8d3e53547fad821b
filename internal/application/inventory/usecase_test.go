package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-kardex/internal/application/inventory"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type world struct {
	products  map[string]*entity.Product
	stock     map[string]int64 // "codigo/ubicacion"
	movements []*entity.Movement
	locations map[int64]*entity.Location
}

func newWorld() *world {
	return &world{
		products:  map[string]*entity.Product{},
		stock:     map[string]int64{},
		locations: map[int64]*entity.Location{},
	}
}

func key(code string, loc int64) string { return fmt.Sprintf("%s/%d", code, loc) }

type productRepo struct{ w *world }

func (r productRepo) Upsert(p *entity.Product) error { r.w.products[p.SaleCode] = p; return nil }
func (r productRepo) Save(p *entity.Product) error   { r.w.products[p.SaleCode] = p; return nil }
func (r productRepo) GetBySaleCode(code string) (*entity.Product, error) {
	return r.w.products[code], nil
}
func (r productRepo) List(limit, offset int) ([]*entity.Product, error)     { return nil, nil }
func (r productRepo) Search(q string, limit int) ([]*entity.Product, error) { return nil, nil }
func (r productRepo) Delete(code string) error                              { return nil }

type stockRepo struct{ w *world }

func (r stockRepo) Get(code string, loc int64) (*entity.Stock, error) {
	return &entity.Stock{ProductCode: code, LocationID: loc, Quantity: r.w.stock[key(code, loc)]}, nil
}
func (r stockRepo) GetForUpdate(code string, loc int64) (*entity.Stock, error) {
	return r.Get(code, loc)
}
func (r stockRepo) Upsert(s *entity.Stock) error {
	r.w.stock[key(s.ProductCode, s.LocationID)] = s.Quantity
	return nil
}
func (r stockRepo) AddQuantity(code string, loc, qty int64) error {
	r.w.stock[key(code, loc)] += qty
	return nil
}
func (r stockRepo) TotalByProduct(code string) (int64, error)              { return 0, nil }
func (r stockRepo) ByLocation() ([]*repository.LocationStockResult, error) { return nil, nil }

type movementRepo struct{ w *world }

func (r movementRepo) Create(m *entity.Movement) error {
	m.ID = int64(len(r.w.movements) + 1)
	r.w.movements = append(r.w.movements, m)
	return nil
}
func (r movementRepo) ListByProductAsc(code string) ([]*entity.Movement, error) { return nil, nil }
func (r movementRepo) Search(f repository.MovementFilter) ([]*repository.MovementReportRow, error) {
	return nil, nil
}

type locationRepo struct{ w *world }

func (r locationRepo) Create(l *entity.Location) error { r.w.locations[l.ID] = l; return nil }
func (r locationRepo) GetByID(id int64) (*entity.Location, error) {
	return r.w.locations[id], nil
}
func (r locationRepo) GetActiveByName(name string) (*entity.Location, error) { return nil, nil }
func (r locationRepo) MainWarehouse() (*entity.Location, error)              { return nil, nil }
func (r locationRepo) List() ([]*entity.Location, error)                     { return nil, nil }
func (r locationRepo) Update(l *entity.Location) error                       { return nil }

type txRunner struct{ w *world }

func (t txRunner) Run(ctx context.Context, fn func(
	repository.MovementRepository,
	repository.StockRepository,
	repository.ProductRepository,
) error) error {
	return fn(movementRepo{t.w}, stockRepo{t.w}, productRepo{t.w})
}

func newEngine(w *world) *inventory.RegisterMovementUseCase {
	return inventory.NewRegisterMovementUseCase(txRunner{w}, productRepo{w}, locationRepo{w})
}

func seed(w *world) {
	w.products["BI000001"] = &entity.Product{
		SaleCode:    "BI000001",
		Description: "Bicicleta infantil",
		Price:       decimal.NewFromInt(19990),
	}
	w.locations[1] = &entity.Location{ID: 1, Name: "Bodega Central", Type: entity.LocationMainWarehouse, Active: true}
	w.locations[2] = &entity.Location{ID: 2, Name: "Kiosko Norte", Type: entity.LocationFixedPoint, Active: true}
	w.stock[key("BI000001", 1)] = 100
}

func ptr[T any](v T) *T { return &v }

// ──────────────────────────────────────────────────────────────────────────────
// Registro de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaCompraSuma(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	mov, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode:      "BI000001",
		Type:          entity.MovementPurchaseIn,
		Quantity:      40,
		DestinationID: ptr(int64(1)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(140), w.stock[key("BI000001", 1)])
	assert.Equal(t, entity.MovementPurchaseIn, mov.Type)
	assert.NotZero(t, mov.ID, "el ID lo asigna el repositorio")
	require.Len(t, w.movements, 1)
}

func TestRegisterMovement_VentaResta(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	_, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode: "BI000001",
		Type:     entity.MovementSale,
		Quantity: 30,
		OriginID: ptr(int64(1)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(70), w.stock[key("BI000001", 1)])
}

func TestRegisterMovement_VentaSinStockFalla(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	_, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode: "BI000001",
		Type:     entity.MovementSale,
		Quantity: 101,
		OriginID: ptr(int64(1)),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(100), w.stock[key("BI000001", 1)],
		"el stock nunca queda negativo ni se toca en un movimiento rechazado")
	assert.Empty(t, w.movements, "un movimiento rechazado no entra al libro")
}

func TestRegisterMovement_TransferenciaMueveAmbosLados(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	mov, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode:      "BI000001",
		Type:          entity.MovementTransferOut,
		Quantity:      25,
		OriginID:      ptr(int64(1)),
		DestinationID: ptr(int64(2)),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(75), w.stock[key("BI000001", 1)])
	assert.Equal(t, int64(25), w.stock[key("BI000001", 2)])
	require.Len(t, w.movements, 1, "la transferencia es un único registro con ambas ubicaciones")
	assert.Equal(t, int64(1), *mov.OriginID)
	assert.Equal(t, int64(2), *mov.DestinationID)
}

func TestRegisterMovement_TransferenciaMismoOrigenYDestinoFalla(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	_, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode:      "BI000001",
		Type:          entity.MovementTransferOut,
		Quantity:      5,
		OriginID:      ptr(int64(1)),
		DestinationID: ptr(int64(1)),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_Validaciones(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	cases := []struct {
		name  string
		input inventory.MovementInput
	}{
		{"cantidad cero", inventory.MovementInput{
			SaleCode: "BI000001", Type: entity.MovementSale, Quantity: 0, OriginID: ptr(int64(1)),
		}},
		{"cantidad negativa", inventory.MovementInput{
			SaleCode: "BI000001", Type: entity.MovementSale, Quantity: -3, OriginID: ptr(int64(1)),
		}},
		{"tipo fuera del vocabulario", inventory.MovementInput{
			SaleCode: "BI000001", Type: "ajuste", Quantity: 1, OriginID: ptr(int64(1)),
		}},
		{"salida sin origen", inventory.MovementInput{
			SaleCode: "BI000001", Type: entity.MovementShrinkage, Quantity: 1,
		}},
		{"entrada sin destino", inventory.MovementInput{
			SaleCode: "BI000001", Type: entity.MovementAdjustPlus, Quantity: 1,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.RegisterMovement(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRegisterMovement_AjustePositivoSumaEnDestino(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	_, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode:      "BI000001",
		Type:          entity.MovementAdjustPlus,
		Quantity:      7,
		DestinationID: ptr(int64(2)),
		Detail:        "Conteo físico mayor al sistema",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), w.stock[key("BI000001", 2)])
	assert.Equal(t, int64(100), w.stock[key("BI000001", 1)], "el origen no participa en un ajuste")
}

func TestRegisterMovement_ProductoInexistenteFalla(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	_, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode: "ZZ999999",
		Type:     entity.MovementSale,
		Quantity: 1,
		OriginID: ptr(int64(1)),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_UbicacionInexistenteFalla(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	_, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode: "BI000001",
		Type:     entity.MovementSale,
		Quantity: 1,
		OriginID: ptr(int64(99)),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_MermaResta(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	_, err := engine.RegisterMovement(context.Background(), inventory.MovementInput{
		SaleCode: "BI000001",
		Type:     entity.MovementShrinkage,
		Quantity: 4,
		OriginID: ptr(int64(1)),
		Detail:   "Unidades dañadas en bodega",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(96), w.stock[key("BI000001", 1)])
}

// staleStockRepo simula dos transacciones concurrentes sobre una fila que aún
// no existe: cada lectura ve la instantánea previa a ambos commits (una fila
// inexistente no se puede bloquear con FOR UPDATE), mientras las escrituras
// caen sobre el estado vivo compartido.
type staleStockRepo struct {
	stockRepo
	snapshot map[string]int64
}

func (r staleStockRepo) Get(code string, loc int64) (*entity.Stock, error) {
	return &entity.Stock{ProductCode: code, LocationID: loc, Quantity: r.snapshot[key(code, loc)]}, nil
}

func (r staleStockRepo) GetForUpdate(code string, loc int64) (*entity.Stock, error) {
	return r.Get(code, loc)
}

func TestRegisterInTx_EntradasConcurrentesEnFilaNuevaNoSePisan(t *testing.T) {
	w := newWorld()
	seed(w)
	engine := newEngine(w)

	// La primera llegada del producto al kiosko: ningún stock previo que
	// bloquear. Ambas entradas leen la misma instantánea vacía.
	stale := staleStockRepo{stockRepo: stockRepo{w}, snapshot: map[string]int64{}}

	for _, qty := range []int64{30, 20} {
		_, err := engine.RegisterInTx(movementRepo{w}, stale, inventory.MovementInput{
			SaleCode:      "BI000001",
			Type:          entity.MovementPurchaseIn,
			Quantity:      qty,
			DestinationID: ptr(int64(2)),
		}, time.Now())
		require.NoError(t, err)
	}

	assert.Equal(t, int64(50), w.stock[key("BI000001", 2)],
		"la segunda entrada suma sobre la primera en vez de sobreescribirla")
	require.Len(t, w.movements, 2)

	// El libro y la proyección de stock cuentan la misma historia.
	var sum int64
	for _, m := range w.movements {
		sum += m.Quantity
	}
	assert.Equal(t, w.stock[key("BI000001", 2)], sum)
}
