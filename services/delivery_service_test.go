package services

import (
	"testing"

	"bigode_server/structs/tables"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSummarizeDrivers(t *testing.T) {
	carlos := &tables.DeliveryDriver{Id: uuid.New(), Name: "Carlos"}
	ana := &tables.DeliveryDriver{Id: uuid.New(), Name: "Ana"}

	delivery := func(driver *tables.DeliveryDriver, fee, commission string) tables.Delivery {
		return tables.Delivery{
			Id:               uuid.New(),
			DriverId:         driver.Id,
			Driver:           driver,
			DeliveryFee:      decimal.RequireFromString(fee),
			DriverCommission: decimal.RequireFromString(commission),
			Status:           tables.DeliveryDelivered,
		}
	}

	deliveries := []tables.Delivery{
		delivery(carlos, "8.00", "1.60"),
		delivery(ana, "10.00", "1.50"),
		delivery(carlos, "12.00", "2.40"),
	}

	summaries := SummarizeDrivers(deliveries)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	// Insertion order: first delivery seen decides position.
	first := summaries[0]
	if first.DriverName != "Carlos" || first.Deliveries != 2 {
		t.Fatalf("unexpected first summary: %+v", first)
	}
	if got := first.TotalEarnings.StringFixed(2); got != "4.00" {
		t.Errorf("TotalEarnings = %s, want 4.00", got)
	}
	if got := first.TotalFees.StringFixed(2); got != "20.00" {
		t.Errorf("TotalFees = %s, want 20.00", got)
	}

	second := summaries[1]
	if second.DriverName != "Ana" || second.Deliveries != 1 {
		t.Fatalf("unexpected second summary: %+v", second)
	}
	if got := second.TotalEarnings.StringFixed(2); got != "1.50" {
		t.Errorf("TotalEarnings = %s, want 1.50", got)
	}
}

func TestSummarizeDriversEmpty(t *testing.T) {
	if got := SummarizeDrivers(nil); len(got) != 0 {
		t.Fatalf("expected no summaries, got %d", len(got))
	}
}
