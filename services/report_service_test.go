package services

import (
	"bytes"
	"testing"
	"time"

	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func reportOrder(status tables.OrderStatus, method tables.PaymentMethod, createdAt time.Time, items ...tables.OrderItem) tables.Order {
	return tables.Order{
		Id:            uuid.New(),
		CustomerName:  "Cliente Teste",
		Status:        status,
		PaymentMethod: method,
		CreatedAt:     createdAt,
		Items:         items,
	}
}

func reportItem(productName, price string, qty int) tables.OrderItem {
	return tables.OrderItem{
		ProductId: uuid.New(),
		Quantity:  qty,
		Price:     decimal.RequireFromString(price),
		Product:   &tables.Product{Name: productName},
	}
}

func TestFlattenOrders(t *testing.T) {
	day := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	orders := []tables.Order{
		reportOrder(tables.OrderStatusDelivered, tables.PaymentPix, day,
			reportItem("X-Bigode", "18.00", 2),
			reportItem("Guaraná", "6.00", 1),
		),
		reportOrder(tables.OrderStatusCancelled, tables.PaymentCash, day,
			reportItem("X-Salada", "20.00", 1),
		),
		reportOrder(tables.OrderStatusDelivered, tables.PaymentCash, day.Add(-72*time.Hour),
			reportItem("X-Bigode", "18.00", 1),
		),
	}

	t.Run("no filter flattens every item", func(t *testing.T) {
		rows := FlattenOrders(orders, structs.ReportFilter{})
		if len(rows) != 4 {
			t.Fatalf("expected 4 rows, got %d", len(rows))
		}
		if rows[0].TotalPrice.StringFixed(2) != "36.00" {
			t.Errorf("TotalPrice = %s, want 36.00", rows[0].TotalPrice)
		}
		if rows[0].PaymentMethod != "PIX" {
			t.Errorf("PaymentMethod = %s, want PIX", rows[0].PaymentMethod)
		}
	})

	t.Run("status filter", func(t *testing.T) {
		rows := FlattenOrders(orders, structs.ReportFilter{Status: "cancelled"})
		if len(rows) != 1 || rows[0].ProductName != "X-Salada" {
			t.Fatalf("unexpected rows: %+v", rows)
		}
	})

	t.Run("payment filter uses raw value not label", func(t *testing.T) {
		rows := FlattenOrders(orders, structs.ReportFilter{PaymentMethod: "dinheiro"})
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
	})

	t.Run("date range", func(t *testing.T) {
		rows := FlattenOrders(orders, structs.ReportFilter{
			From: day.Add(-time.Hour),
			To:   day.Add(time.Hour),
		})
		if len(rows) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(rows))
		}
	})

	t.Run("missing product relation falls back to id", func(t *testing.T) {
		item := reportItem("", "10.00", 1)
		item.Product = nil
		order := reportOrder(tables.OrderStatusDelivered, tables.PaymentPix, day, item)

		rows := FlattenOrders([]tables.Order{order}, structs.ReportFilter{})
		if len(rows) != 1 {
			t.Fatalf("expected 1 row, got %d", len(rows))
		}
		if rows[0].ProductName != item.ProductId.String() {
			t.Errorf("ProductName = %s, want product id", rows[0].ProductName)
		}
	})
}

func TestSummarize(t *testing.T) {
	day := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)
	orders := []tables.Order{
		reportOrder(tables.OrderStatusDelivered, tables.PaymentPix, day,
			reportItem("X-Bigode", "18.00", 2),
			reportItem("Guaraná", "6.00", 1),
		),
		reportOrder(tables.OrderStatusDelivered, tables.PaymentCash, day,
			reportItem("X-Bigode", "18.00", 1),
		),
	}
	rows := FlattenOrders(orders, structs.ReportFilter{})

	summary := Summarize(rows)
	if got := summary.TotalSales.StringFixed(2); got != "60.00" {
		t.Errorf("TotalSales = %s, want 60.00", got)
	}
	if summary.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", summary.TotalOrders)
	}
	if summary.TotalUnits != 4 {
		t.Errorf("TotalUnits = %d, want 4", summary.TotalUnits)
	}

	if len(summary.TopProducts) != 2 {
		t.Fatalf("expected 2 top products, got %d", len(summary.TopProducts))
	}
	if summary.TopProducts[0].ProductName != "X-Bigode" {
		t.Errorf("top product = %s, want X-Bigode", summary.TopProducts[0].ProductName)
	}
	if got := summary.TopProducts[0].Revenue.StringFixed(2); got != "54.00" {
		t.Errorf("top revenue = %s, want 54.00", got)
	}

	pix := summary.PaymentTotals["PIX"]
	if pix.Count != 1 || pix.Total.StringFixed(2) != "42.00" {
		t.Errorf("PIX breakdown = %+v", pix)
	}
	cash := summary.PaymentTotals["Dinheiro"]
	if cash.Count != 1 || cash.Total.StringFixed(2) != "18.00" {
		t.Errorf("Dinheiro breakdown = %+v", cash)
	}
}

func TestSummarizeTopFive(t *testing.T) {
	day := time.Now()
	var items []tables.OrderItem
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		items = append(items, reportItem(name, "10.00", 1))
	}
	rows := FlattenOrders([]tables.Order{
		reportOrder(tables.OrderStatusDelivered, tables.PaymentPix, day, items...),
	}, structs.ReportFilter{})

	summary := Summarize(rows)
	if len(summary.TopProducts) != 5 {
		t.Errorf("expected top list capped at 5, got %d", len(summary.TopProducts))
	}
}

func TestExportXLSX(t *testing.T) {
	rs := &ReportService{}
	day := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	rows := FlattenOrders([]tables.Order{
		reportOrder(tables.OrderStatusDelivered, tables.PaymentPix, day,
			reportItem("X-Bigode", "18.00", 2),
		),
	}, structs.ReportFilter{})

	data, err := rs.ExportXLSX(rows)
	if err != nil {
		t.Fatalf("ExportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to reopen spreadsheet: %v", err)
	}
	defer f.Close()

	header, err := f.GetCellValue("Vendas", "C1")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if header != "Produto" {
		t.Errorf("C1 = %q, want Produto", header)
	}

	product, _ := f.GetCellValue("Vendas", "C2")
	if product != "X-Bigode" {
		t.Errorf("C2 = %q, want X-Bigode", product)
	}
	date, _ := f.GetCellValue("Vendas", "I2")
	if date != "10/06/2025 14:30" {
		t.Errorf("I2 = %q, want formatted date", date)
	}
}
