package structs

import "github.com/shopspring/decimal"

type DriverRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Phone          string `json:"phone" validate:"required,min=10,max=20"`
	VehicleType    string `json:"vehicle_type" validate:"required,oneof=moto carro bicicleta a_pe"`
	LicensePlate   string `json:"license_plate" validate:"omitempty,max=10"`
	CommissionRate string `json:"commission_rate" validate:"required"`
	Active         *bool  `json:"active" validate:"omitempty"`
}

type DeliveryRequest struct {
	OrderId     string `json:"order_id" validate:"required,uuid4"`
	DriverId    string `json:"driver_id" validate:"required,uuid4"`
	DeliveryFee string `json:"delivery_fee" validate:"required"`
	Notes       string `json:"notes" validate:"omitempty,max=300"`
}

type DeliveryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=assigned picked_up delivered cancelled"`
}

// DriverSummary aggregates a driver's completed deliveries and earnings.
type DriverSummary struct {
	DriverId      string          `json:"driver_id"`
	DriverName    string          `json:"driver_name"`
	Deliveries    int             `json:"deliveries"`
	TotalEarnings decimal.Decimal `json:"total_earnings"`
	TotalFees     decimal.Decimal `json:"total_fees"`
}
