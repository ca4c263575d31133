package services

import (
	"testing"

	"bigode_server/structs/tables"

	"github.com/shopspring/decimal"
)

func TestComputeDashboard(t *testing.T) {
	item := func(price, cost string, qty int) tables.OrderItem {
		return tables.OrderItem{
			Quantity: qty,
			Price:    decimal.RequireFromString(price),
			Product:  &tables.Product{Cost: decimal.RequireFromString(cost)},
		}
	}

	orders := []tables.Order{
		{
			Status: tables.OrderStatusDelivered,
			Total:  decimal.RequireFromString("40.00"),
			Items:  []tables.OrderItem{item("20.00", "8.00", 2)},
		},
		{
			Status: tables.OrderStatusPending,
			Total:  decimal.RequireFromString("10.00"),
			Items:  []tables.OrderItem{item("10.00", "5.00", 1)},
		},
		{
			Status: tables.OrderStatusCancelled,
			Total:  decimal.RequireFromString("99.00"),
			Items:  []tables.OrderItem{item("99.00", "1.00", 1)},
		},
	}

	stats := ComputeDashboard(orders)

	if stats.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2 (cancelled excluded)", stats.TotalOrders)
	}
	if got := stats.TotalSales.StringFixed(2); got != "50.00" {
		t.Errorf("TotalSales = %s, want 50.00", got)
	}

	// Revenue 50, cost 21 -> margin 58%.
	if got := stats.ProfitMargin.StringFixed(2); got != "58.00" {
		t.Errorf("ProfitMargin = %s, want 58.00", got)
	}
}

func TestComputeDashboardNoOrders(t *testing.T) {
	stats := ComputeDashboard(nil)
	if stats.TotalOrders != 0 || !stats.TotalSales.IsZero() {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if !stats.ProfitMargin.IsZero() {
		t.Errorf("ProfitMargin = %s, want 0 when there is no revenue", stats.ProfitMargin)
	}
}

func TestComputeDashboardMissingCost(t *testing.T) {
	orders := []tables.Order{
		{
			Status: tables.OrderStatusDelivered,
			Total:  decimal.RequireFromString("30.00"),
			Items: []tables.OrderItem{
				{Quantity: 1, Price: decimal.RequireFromString("30.00")},
			},
		},
	}

	stats := ComputeDashboard(orders)
	// Without a loaded product the cost is unknown; margin treats it as zero.
	if got := stats.ProfitMargin.StringFixed(2); got != "100.00" {
		t.Errorf("ProfitMargin = %s, want 100.00", got)
	}
}
