package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryDriver struct {
	tableName      struct{}        `bun:"table:delivery_drivers,alias:dd"`
	Id             uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name           string          `bun:"name,notnull" json:"name"`
	Phone          string          `bun:"phone,notnull" json:"phone"`
	VehicleType    VehicleType     `bun:"vehicle_type,notnull" json:"vehicle_type"`
	LicensePlate   string          `bun:"license_plate" json:"license_plate,omitempty"`
	CommissionRate decimal.Decimal `bun:"commission_rate,notnull,type:numeric(5,4)" json:"commission_rate"`
	Active         bool            `bun:"active,notnull,default:true" json:"active"`
	CreatedAt      time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Delivery struct {
	tableName        struct{}        `bun:"table:deliveries,alias:d"`
	Id               uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId          uuid.UUID       `bun:"order_id,notnull,type:uuid" json:"order_id"`
	DriverId         uuid.UUID       `bun:"driver_id,notnull,type:uuid" json:"driver_id"`
	PickupTime       *time.Time      `bun:"pickup_time,nullzero" json:"pickup_time,omitempty"`
	DeliveryTime     *time.Time      `bun:"delivery_time,nullzero" json:"delivery_time,omitempty"`
	DeliveryFee      decimal.Decimal `bun:"delivery_fee,notnull,type:numeric(10,2)" json:"delivery_fee"`
	DriverCommission decimal.Decimal `bun:"driver_commission,notnull,type:numeric(10,2)" json:"driver_commission"`
	Status           DeliveryStatus  `bun:"status,notnull,default:'assigned'" json:"status"`
	Notes            string          `bun:"notes" json:"notes,omitempty"`
	CreatedAt        time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`

	Driver *DeliveryDriver `bun:"rel:belongs-to,join:driver_id=id" json:"driver,omitempty"`
	Order  *Order          `bun:"rel:belongs-to,join:order_id=id" json:"order,omitempty"`
}

type VehicleType string

const (
	VehicleMotorcycle VehicleType = "moto"
	VehicleCar        VehicleType = "carro"
	VehicleBicycle    VehicleType = "bicicleta"
	VehicleOnFoot     VehicleType = "a_pe"
)

// DeliveryStatus is distinct from OrderStatus.
type DeliveryStatus string

const (
	DeliveryAssigned  DeliveryStatus = "assigned"
	DeliveryPickedUp  DeliveryStatus = "picked_up"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)
