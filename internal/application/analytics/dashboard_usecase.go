package analytics

import (
	"context"

	"github.com/tu-usuario/inventario-kardex/internal/application/dto"
	"github.com/tu-usuario/inventario-kardex/internal/domain/repository"
)

// topSoldLimit cantidad de productos en el ranking del dashboard.
const topSoldLimit = 5

// DashboardUseCase arma los datos agregados del dashboard ejecutivo:
// unidades vendidas por mes, ranking de más vendidos y stock por ubicación.
type DashboardUseCase struct {
	analytics repository.AnalyticsRepository
	stocks    repository.StockRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analytics repository.AnalyticsRepository, stocks repository.StockRepository) *DashboardUseCase {
	return &DashboardUseCase{analytics: analytics, stocks: stocks}
}

// Data consulta las tres series y las devuelve en un solo payload.
func (uc *DashboardUseCase) Data(ctx context.Context) (*dto.DashboardResponse, error) {
	monthly, err := uc.analytics.MonthlySales(ctx)
	if err != nil {
		return nil, err
	}
	top, err := uc.analytics.TopSoldProducts(ctx, topSoldLimit)
	if err != nil {
		return nil, err
	}
	byLocation, err := uc.stocks.ByLocation()
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		MonthlySales:    make([]dto.MonthlySalesDTO, 0, len(monthly)),
		TopSold:         make([]dto.TopProductDTO, 0, len(top)),
		StockByLocation: make([]dto.LocationStockDTO, 0, len(byLocation)),
	}
	for _, m := range monthly {
		resp.MonthlySales = append(resp.MonthlySales, dto.MonthlySalesDTO{Month: m.Month, Total: m.Total})
	}
	for _, t := range top {
		resp.TopSold = append(resp.TopSold, dto.TopProductDTO{
			SaleCode:    t.SaleCode,
			Description: t.Description,
			TotalSold:   t.TotalSold,
		})
	}
	for _, s := range byLocation {
		resp.StockByLocation = append(resp.StockByLocation, dto.LocationStockDTO{
			LocationName: s.LocationName,
			TotalStock:   s.TotalStock,
		})
	}
	return resp, nil
}
