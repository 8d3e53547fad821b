package repository

import "context"

// AnalyticsRepository consultas de solo lectura para el dashboard ejecutivo.
type AnalyticsRepository interface {
	MonthlySales(ctx context.Context) ([]MonthlySalesResult, error)
	TopSoldProducts(ctx context.Context, limit int) ([]TopProductResult, error)
}

// MonthlySalesResult total de unidades vendidas por mes (AAAA-MM).
type MonthlySalesResult struct {
	Month string
	Total int64
}

// TopProductResult producto con su total de unidades vendidas.
type TopProductResult struct {
	SaleCode    string
	Description string
	TotalSold   int64
}
