package services

import (
	"context"
	"fmt"
	"time"

	"bigode_server/database"
	"bigode_server/lib"
	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewDeliveryService(logger *gecho.Logger, db *database.DB) *DeliveryService {
	return &DeliveryService{logger: logger, db: db}
}

func (ds *DeliveryService) ListDrivers(ctx context.Context) ([]tables.DeliveryDriver, error) {
	drivers, err := database.Query[tables.DeliveryDriver](ds.db).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		ds.logger.Error("Failed to fetch drivers", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch drivers: %w", err)
	}
	return drivers, nil
}

func (ds *DeliveryService) CreateDriver(ctx context.Context, req *structs.DriverRequest) (*tables.DeliveryDriver, error) {
	commission, err := decimal.NewFromString(req.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("invalid commission rate: %s", req.CommissionRate)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	driver := &tables.DeliveryDriver{
		Id:             uuid.New(),
		Name:           req.Name,
		Phone:          req.Phone,
		VehicleType:    tables.VehicleType(req.VehicleType),
		LicensePlate:   req.LicensePlate,
		CommissionRate: commission,
		Active:         active,
		CreatedAt:      time.Now(),
	}

	inserted, err := database.Query[tables.DeliveryDriver](ds.db).Insert(ctx, driver)
	if err != nil {
		ds.logger.Error("Failed to create driver", gecho.Field("error", err), gecho.Field("name", req.Name))
		return nil, lib.MapPgError(err)
	}
	return inserted, nil
}

func (ds *DeliveryService) UpdateDriver(ctx context.Context, id uuid.UUID, req *structs.DriverRequest) (*tables.DeliveryDriver, error) {
	commission, err := decimal.NewFromString(req.CommissionRate)
	if err != nil {
		return nil, fmt.Errorf("invalid commission rate: %s", req.CommissionRate)
	}

	fields := map[string]any{
		"name":            req.Name,
		"phone":           req.Phone,
		"vehicle_type":    req.VehicleType,
		"license_plate":   req.LicensePlate,
		"commission_rate": commission,
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	rows, err := database.Query[tables.DeliveryDriver](ds.db).
		Where("id", id).
		UpdateReturning(ctx, fields)
	if err != nil {
		ds.logger.Error("Failed to update driver", gecho.Field("error", err), gecho.Field("id", id))
		return nil, lib.MapPgError(err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("driver not found")
	}
	return &rows[0], nil
}

func (ds *DeliveryService) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	affected, err := database.Query[tables.DeliveryDriver](ds.db).
		Where("id", id).
		Delete(ctx)
	if err != nil {
		ds.logger.Error("Failed to delete driver", gecho.Field("error", err), gecho.Field("id", id))
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return fmt.Errorf("driver not found")
	}
	return nil
}

func (ds *DeliveryService) ListDeliveries(ctx context.Context, status string) ([]tables.Delivery, error) {
	query := database.Query[tables.Delivery](ds.db).
		Relation("Driver").
		Relation("Order").
		OrderBy("created_at", database.DESC).
		Timeout(10 * time.Second)

	if status != "" {
		query = query.Where("d.status", status)
	}

	deliveries, err := query.All(ctx)
	if err != nil {
		ds.logger.Error("Failed to fetch deliveries", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch deliveries: %w", err)
	}
	return deliveries, nil
}

// CreateDelivery assigns an order to a driver. The driver's commission is a
// snapshot computed from their current rate; later rate changes do not touch
// existing deliveries.
func (ds *DeliveryService) CreateDelivery(ctx context.Context, req *structs.DeliveryRequest) (*tables.Delivery, error) {
	orderId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return nil, fmt.Errorf("invalid order id: %s", req.OrderId)
	}
	driverId, err := uuid.Parse(req.DriverId)
	if err != nil {
		return nil, fmt.Errorf("invalid driver id: %s", req.DriverId)
	}
	fee, err := decimal.NewFromString(req.DeliveryFee)
	if err != nil {
		return nil, fmt.Errorf("invalid delivery fee: %s", req.DeliveryFee)
	}

	driver, err := database.Query[tables.DeliveryDriver](ds.db).
		Where("id", driverId).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch driver: %w", err)
	}
	if driver == nil {
		return nil, fmt.Errorf("driver not found")
	}
	if !driver.Active {
		return nil, fmt.Errorf("driver %s is inactive", driver.Name)
	}

	delivery := &tables.Delivery{
		Id:               uuid.New(),
		OrderId:          orderId,
		DriverId:         driverId,
		DeliveryFee:      fee,
		DriverCommission: fee.Mul(driver.CommissionRate).Round(2),
		Status:           tables.DeliveryAssigned,
		Notes:            req.Notes,
		CreatedAt:        time.Now(),
	}

	inserted, err := database.Query[tables.Delivery](ds.db).Insert(ctx, delivery)
	if err != nil {
		ds.logger.Error("Failed to create delivery",
			gecho.Field("error", err),
			gecho.Field("order_id", orderId),
			gecho.Field("driver_id", driverId),
		)
		return nil, lib.MapPgError(err)
	}
	return inserted, nil
}

// UpdateDeliveryStatus stamps pickup and delivery times as the status
// advances.
func (ds *DeliveryService) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status tables.DeliveryStatus) (*tables.Delivery, error) {
	fields := map[string]any{"status": status}
	now := time.Now()

	switch status {
	case tables.DeliveryPickedUp:
		fields["pickup_time"] = now
	case tables.DeliveryDelivered:
		fields["delivery_time"] = now
	}

	rows, err := database.Query[tables.Delivery](ds.db).
		Where("id", id).
		UpdateReturning(ctx, fields)
	if err != nil {
		ds.logger.Error("Failed to update delivery status", gecho.Field("error", err), gecho.Field("id", id))
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("delivery not found")
	}
	return &rows[0], nil
}

// DriverSummaries totals completed deliveries per driver.
func (ds *DeliveryService) DriverSummaries(ctx context.Context) ([]structs.DriverSummary, error) {
	deliveries, err := database.Query[tables.Delivery](ds.db).
		Relation("Driver").
		Where("status", tables.DeliveryDelivered).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deliveries: %w", err)
	}
	return SummarizeDrivers(deliveries), nil
}

// SummarizeDrivers groups completed deliveries by driver.
func SummarizeDrivers(deliveries []tables.Delivery) []structs.DriverSummary {
	byDriver := make(map[uuid.UUID]*structs.DriverSummary)
	order := make([]uuid.UUID, 0)

	for _, d := range deliveries {
		summary, ok := byDriver[d.DriverId]
		if !ok {
			summary = &structs.DriverSummary{
				DriverId:      d.DriverId.String(),
				TotalEarnings: decimal.Zero,
				TotalFees:     decimal.Zero,
			}
			if d.Driver != nil {
				summary.DriverName = d.Driver.Name
			}
			byDriver[d.DriverId] = summary
			order = append(order, d.DriverId)
		}
		summary.Deliveries++
		summary.TotalEarnings = summary.TotalEarnings.Add(d.DriverCommission)
		summary.TotalFees = summary.TotalFees.Add(d.DeliveryFee)
	}

	summaries := make([]structs.DriverSummary, 0, len(byDriver))
	for _, id := range order {
		summaries = append(summaries, *byDriver[id])
	}
	return summaries
}
