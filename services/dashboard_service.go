package services

import (
	"context"
	"fmt"
	"time"

	"bigode_server/database"
	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/shopspring/decimal"
)

// Products at or below this stock level are flagged on the dashboard.
const lowStockThreshold = 5

type DashboardService struct {
	logger         *gecho.Logger
	db             *database.DB
	catalogService *CatalogService
}

func NewDashboardService(logger *gecho.Logger, db *database.DB, catalogService *CatalogService) *DashboardService {
	return &DashboardService{logger: logger, db: db, catalogService: catalogService}
}

// Stats composes the admin landing page cards from orders and the catalog.
func (ds *DashboardService) Stats(ctx context.Context) (*structs.DashboardStats, error) {
	orders, err := database.Query[tables.Order](ds.db).
		Relation("Items").
		Relation("Items.Product").
		Timeout(15 * time.Second).
		All(ctx)
	if err != nil {
		ds.logger.Error("Failed to fetch orders for dashboard", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	products, err := ds.catalogService.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := ds.catalogService.CountCategories(ctx)
	if err != nil {
		return nil, err
	}
	lowStock, err := ds.catalogService.CountLowStock(ctx, lowStockThreshold)
	if err != nil {
		return nil, err
	}

	stats := ComputeDashboard(orders)
	stats.TotalProducts = products
	stats.TotalCategories = categories
	stats.LowStockProducts = lowStock
	return stats, nil
}

// ComputeDashboard aggregates order totals and the estimated profit margin.
// Cancelled orders are excluded everywhere. The margin compares item revenue
// against the current product cost, so it drifts when costs are edited after
// the sale.
func ComputeDashboard(orders []tables.Order) *structs.DashboardStats {
	stats := &structs.DashboardStats{
		TotalSales:   decimal.Zero,
		ProfitMargin: decimal.Zero,
	}

	revenue := decimal.Zero
	cost := decimal.Zero

	for _, order := range orders {
		if order.Status == tables.OrderStatusCancelled {
			continue
		}
		stats.TotalOrders++
		stats.TotalSales = stats.TotalSales.Add(order.Total)

		for _, item := range order.Items {
			qty := decimal.NewFromInt(int64(item.Quantity))
			revenue = revenue.Add(item.Price.Mul(qty))
			if item.Product != nil {
				cost = cost.Add(item.Product.Cost.Mul(qty))
			}
		}
	}

	if revenue.IsPositive() {
		stats.ProfitMargin = revenue.Sub(cost).
			Div(revenue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return stats
}
