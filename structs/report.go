package structs

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRow is one order item joined with its order and product, the unit of
// the sales report and of the spreadsheet export.
type SalesRow struct {
	OrderId       string          `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	ProductName   string          `json:"product_name"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ReportFilter narrows sales rows by date range, order status and payment
// method. Zero values mean "no filter".
type ReportFilter struct {
	From          time.Time
	To            time.Time
	Status        string
	PaymentMethod string
}

type ReportSummary struct {
	TotalSales    decimal.Decimal             `json:"total_sales"`
	TotalOrders   int                         `json:"total_orders"`
	TotalUnits    int                         `json:"total_units"`
	TopProducts   []ProductSales              `json:"top_products"`
	PaymentTotals map[string]PaymentBreakdown `json:"payment_totals"`
}

type ProductSales struct {
	ProductName string          `json:"product_name"`
	Units       int             `json:"units"`
	Revenue     decimal.Decimal `json:"revenue"`
}

type PaymentBreakdown struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// DashboardStats backs the admin landing page cards.
type DashboardStats struct {
	TotalSales       decimal.Decimal `json:"total_sales"`
	TotalOrders      int             `json:"total_orders"`
	TotalProducts    int             `json:"total_products"`
	TotalCategories  int             `json:"total_categories"`
	LowStockProducts int             `json:"low_stock_products"`
	ProfitMargin     decimal.Decimal `json:"profit_margin"`
}
