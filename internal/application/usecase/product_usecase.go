package usecase

import (
	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/domain"
	"github.com/tu-usuario/inventario-kardex/internal/domain/entity"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo de productos. El stock no se
// toca aquí: se maneja vía movimientos y cargas.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Save crea o actualiza un producto por cod_venta (upsert, incluye umbrales).
func (uc *ProductUseCase) Save(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if !entity.ValidSaleCode(in.SaleCode) {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock < 0 || in.CriticalStock < 0 || in.MaxStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		SaleCode:      in.SaleCode,
		Description:   in.Description,
		Price:         in.Price,
		Cost:          in.Cost,
		FactoryID:     in.FactoryID,
		MinStock:      in.MinStock,
		CriticalStock: in.CriticalStock,
		MaxStock:      in.MaxStock,
	}
	if err := uc.repo.Save(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetBySaleCode obtiene un producto por código de venta.
func (uc *ProductUseCase) GetBySaleCode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetBySaleCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Search busca por subcadena de cod_venta o id_fabrica. Consultas de menos
// de 2 caracteres devuelven vacío sin tocar la base.
func (uc *ProductUseCase) Search(query string) ([]dto.ProductResponse, error) {
	if len(query) < 2 {
		return []dto.ProductResponse{}, nil
	}
	products, err := uc.repo.Search(query, 50)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Delete elimina el producto junto con su stock y movimientos (cascada).
func (uc *ProductUseCase) Delete(code string) error {
	product, err := uc.repo.GetBySaleCode(code)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(code)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		SaleCode:      p.SaleCode,
		Description:   p.Description,
		Price:         p.Price,
		Cost:          p.Cost,
		FactoryID:     p.FactoryID,
		MinStock:      p.MinStock,
		CriticalStock: p.CriticalStock,
		MaxStock:      p.MaxStock,
	}
}
