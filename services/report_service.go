package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"bigode_server/database"
	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type ReportService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewReportService(logger *gecho.Logger, db *database.DB) *ReportService {
	return &ReportService{logger: logger, db: db}
}

// FlattenOrders turns orders into one sales row per item, applying the
// filter. Rows without a loaded product fall back to the raw product id so
// deleted products still show up in historic reports.
func FlattenOrders(orders []tables.Order, filter structs.ReportFilter) []structs.SalesRow {
	rows := make([]structs.SalesRow, 0, len(orders))
	for _, order := range orders {
		if filter.Status != "" && string(order.Status) != filter.Status {
			continue
		}
		if filter.PaymentMethod != "" && string(order.PaymentMethod) != filter.PaymentMethod {
			continue
		}
		if !filter.From.IsZero() && order.CreatedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && order.CreatedAt.After(filter.To) {
			continue
		}

		for _, item := range order.Items {
			productName := item.ProductId.String()
			if item.Product != nil {
				productName = item.Product.Name
			}
			rows = append(rows, structs.SalesRow{
				OrderId:       order.Id.String(),
				CustomerName:  order.CustomerName,
				ProductName:   productName,
				Quantity:      item.Quantity,
				UnitPrice:     item.Price,
				TotalPrice:    item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
				PaymentMethod: order.PaymentMethod.Label(),
				Status:        string(order.Status),
				CreatedAt:     order.CreatedAt,
			})
		}
	}
	return rows
}

// Summarize aggregates sales rows into the report header: totals, top
// products by revenue, and a per-payment-method breakdown.
func Summarize(rows []structs.SalesRow) structs.ReportSummary {
	summary := structs.ReportSummary{
		TotalSales:    decimal.Zero,
		PaymentTotals: make(map[string]structs.PaymentBreakdown),
	}

	orderIds := make(map[string]struct{})
	productTotals := make(map[string]*structs.ProductSales)
	orderPayments := make(map[string]string)
	orderTotals := make(map[string]decimal.Decimal)

	for _, row := range rows {
		summary.TotalUnits += row.Quantity
		summary.TotalSales = summary.TotalSales.Add(row.TotalPrice)
		orderIds[row.OrderId] = struct{}{}

		p, ok := productTotals[row.ProductName]
		if !ok {
			p = &structs.ProductSales{ProductName: row.ProductName, Revenue: decimal.Zero}
			productTotals[row.ProductName] = p
		}
		p.Units += row.Quantity
		p.Revenue = p.Revenue.Add(row.TotalPrice)

		orderPayments[row.OrderId] = row.PaymentMethod
		orderTotals[row.OrderId] = orderTotals[row.OrderId].Add(row.TotalPrice)
	}

	summary.TotalOrders = len(orderIds)

	for orderId, method := range orderPayments {
		breakdown := summary.PaymentTotals[method]
		breakdown.Count++
		breakdown.Total = breakdown.Total.Add(orderTotals[orderId])
		summary.PaymentTotals[method] = breakdown
	}

	top := make([]structs.ProductSales, 0, len(productTotals))
	for _, p := range productTotals {
		top = append(top, *p)
	}
	sort.Slice(top, func(i, j int) bool {
		return top[i].Revenue.GreaterThan(top[j].Revenue)
	})
	if len(top) > 5 {
		top = top[:5]
	}
	summary.TopProducts = top

	return summary
}

// SalesRows fetches orders with items and products and flattens them through
// the filter.
func (rs *ReportService) SalesRows(ctx context.Context, filter structs.ReportFilter) ([]structs.SalesRow, error) {
	orders, err := rs.fetchOrders(ctx)
	if err != nil {
		return nil, err
	}
	return FlattenOrders(orders, filter), nil
}

// Report builds rows and their summary in one call for the reports page.
func (rs *ReportService) Report(ctx context.Context, filter structs.ReportFilter) ([]structs.SalesRow, structs.ReportSummary, error) {
	rows, err := rs.SalesRows(ctx, filter)
	if err != nil {
		return nil, structs.ReportSummary{}, err
	}
	return rows, Summarize(rows), nil
}

var exportHeader = []string{
	"Pedido", "Cliente", "Produto", "Quantidade",
	"Preço Unitário", "Total", "Pagamento", "Status", "Data",
}

// ExportXLSX renders sales rows as a spreadsheet and returns the file bytes.
func (rs *ReportService) ExportXLSX(rows []structs.SalesRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Vendas"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to build header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		values := []any{
			row.OrderId,
			row.CustomerName,
			row.ProductName,
			row.Quantity,
			row.UnitPrice.InexactFloat64(),
			row.TotalPrice.InexactFloat64(),
			row.PaymentMethod,
			row.Status,
			row.CreatedAt.Format("02/01/2006 15:04"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("failed to build cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}

func (rs *ReportService) fetchOrders(ctx context.Context) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](rs.db).
		Relation("Items").
		Relation("Items.Product").
		OrderBy("created_at", database.DESC).
		Timeout(20 * time.Second).
		All(ctx)
	if err != nil {
		rs.logger.Error("Failed to fetch orders for report", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}
