package importer_test

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de carga masiva
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Upsert(p *entity.Product) error {
	if prev, ok := r.products[p.SaleCode]; ok {
		// los umbrales existentes se conservan
		p.MinStock = prev.MinStock
		p.CriticalStock = prev.CriticalStock
		p.MaxStock = prev.MaxStock
	}
	cp := *p
	r.products[p.SaleCode] = &cp
	return nil
}

func (r *memProductRepo) Save(p *entity.Product) error {
	cp := *p
	r.products[p.SaleCode] = &cp
	return nil
}

func (r *memProductRepo) GetBySaleCode(code string) (*entity.Product, error) {
	p, ok := r.products[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) Search(q string, limit int) ([]*entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(code string) error {
	delete(r.products, code)
	return nil
}

type memStockRepo struct {
	stock map[string]int64 // "codigo/ubicacion" -> cantidad
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{stock: map[string]int64{}}
}

func stockKey(code string, locationID int64) string {
	return fmt.Sprintf("%s/%d", code, locationID)
}

func (r *memStockRepo) Get(code string, locationID int64) (*entity.Stock, error) {
	return &entity.Stock{
		ProductCode: code,
		LocationID:  locationID,
		Quantity:    r.stock[stockKey(code, locationID)],
	}, nil
}

func (r *memStockRepo) GetForUpdate(code string, locationID int64) (*entity.Stock, error) {
	return r.Get(code, locationID)
}

func (r *memStockRepo) Upsert(s *entity.Stock) error {
	r.stock[stockKey(s.ProductCode, s.LocationID)] = s.Quantity
	return nil
}

func (r *memStockRepo) AddQuantity(code string, locationID, qty int64) error {
	r.stock[stockKey(code, locationID)] += qty
	return nil
}

func (r *memStockRepo) TotalByProduct(code string) (int64, error) {
	var total int64
	for k, qty := range r.stock {
		if strings.HasPrefix(k, code+"/") {
			total += qty
		}
	}
	return total, nil
}

func (r *memStockRepo) ByLocation() ([]*repository.LocationStockResult, error) { return nil, nil }

type memMovementRepo struct {
	movements []*entity.Movement
	nextID    int64
}

func newMemMovementRepo() *memMovementRepo { return &memMovementRepo{} }

func (r *memMovementRepo) Create(m *entity.Movement) error {
	r.nextID++
	m.ID = r.nextID
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memMovementRepo) ListByProductAsc(code string) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range r.movements {
		if m.ProductCode == code {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) Search(f repository.MovementFilter) ([]*repository.MovementReportRow, error) {
	return nil, nil
}

type memLocationRepo struct {
	locations map[int64]*entity.Location
	nextID    int64
}

func newMemLocationRepo() *memLocationRepo {
	return &memLocationRepo{locations: map[int64]*entity.Location{}}
}

func (r *memLocationRepo) Create(l *entity.Location) error {
	r.nextID++
	l.ID = r.nextID
	cp := *l
	r.locations[l.ID] = &cp
	return nil
}

func (r *memLocationRepo) GetByID(id int64) (*entity.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *memLocationRepo) GetActiveByName(name string) (*entity.Location, error) {
	for _, l := range r.locations {
		if l.Name == name && l.Active {
			cp := *l
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memLocationRepo) MainWarehouse() (*entity.Location, error) {
	var found []*entity.Location
	for _, l := range r.locations {
		if l.Type == entity.LocationMainWarehouse && l.Active {
			found = append(found, l)
		}
	}
	switch len(found) {
	case 0:
		return nil, domain.ErrNoMainWarehouse
	case 1:
		cp := *found[0]
		return &cp, nil
	default:
		return nil, domain.ErrManyMainWarehouses
	}
}

func (r *memLocationRepo) List() ([]*entity.Location, error) { return nil, nil }
func (r *memLocationRepo) Update(l *entity.Location) error {
	cp := *l
	r.locations[l.ID] = &cp
	return nil
}

// fakeTxRunner ejecuta el callback directo contra los repos en memoria, sin
// transacción real.
type fakeTxRunner struct {
	mov   repository.MovementRepository
	stock repository.StockRepository
	prod  repository.ProductRepository
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.MovementRepository,
	repository.StockRepository,
	repository.ProductRepository,
) error) error {
	return fn(f.mov, f.stock, f.prod)
}
