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
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger          *gecho.Logger
	cfg             *structs.Config
	db              *database.DB
	catalogService  *CatalogService
	realtimeService *RealtimeService
	notifier        *NotificationService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	catalogService *CatalogService,
	realtimeService *RealtimeService,
	notifier *NotificationService,
) *OrderService {
	return &OrderService{
		logger:          logger,
		cfg:             cfg,
		db:              db,
		catalogService:  catalogService,
		realtimeService: realtimeService,
		notifier:        notifier,
	}
}

// CartLine pairs a requested item with the product row backing it.
type CartLine struct {
	Product  *tables.Product
	Quantity int
	Notes    string
}

// ResolveCart matches checkout items to product rows and rejects unknown,
// inactive, or under-stocked products. The stock check runs against rows
// fetched now; a concurrent checkout can still win the race, matching the
// storefront's read-then-write behavior.
func ResolveCart(items []structs.OrderItemRequest, products []tables.Product) ([]CartLine, error) {
	byId := make(map[uuid.UUID]*tables.Product, len(products))
	for i := range products {
		byId[products[i].Id] = &products[i]
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.ProductId)
		if err != nil {
			return nil, fmt.Errorf("invalid product id: %s", item.ProductId)
		}

		product, ok := byId[id]
		if !ok {
			return nil, fmt.Errorf("product not found: %s", item.ProductId)
		}
		if !product.Active {
			return nil, fmt.Errorf("product %s is no longer available", product.Name)
		}
		if item.Quantity > product.Stock {
			return nil, fmt.Errorf("insufficient stock for %s: only %d available", product.Name, product.Stock)
		}

		lines = append(lines, CartLine{
			Product:  product,
			Quantity: item.Quantity,
			Notes:    item.Notes,
		})
	}

	return lines, nil
}

// ComputeTotal sums price x quantity over the cart and applies a percentage
// discount. Item prices are the snapshot the order stores.
func ComputeTotal(lines []CartLine, discountPercent decimal.Decimal) structs.DiscountedTotal {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	discount := subtotal.Mul(discountPercent).Div(decimal.NewFromInt(100)).Round(2)
	total := subtotal.Sub(discount)

	return structs.DiscountedTotal{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
	}
}

// CreateOrder validates the cart, snapshots prices, and inserts the order
// with its items in one transaction. A valid wheel coupon from today applies
// its percentage discount to the total.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.OrderRequest, establishmentId uuid.UUID) (*tables.Order, error) {
	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		id, err := uuid.Parse(item.ProductId)
		if err != nil {
			return nil, fmt.Errorf("invalid product id: %s", item.ProductId)
		}
		ids = append(ids, id)
	}

	products, err := os.catalogService.GetProductsByIds(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines, err := ResolveCart(req.Items, products)
	if err != nil {
		return nil, err
	}

	discount := decimal.Zero
	if req.CouponCode != "" {
		discount, err = os.lookupCouponDiscount(ctx, req.CouponCode)
		if err != nil {
			return nil, err
		}
	}

	totals := ComputeTotal(lines, discount)

	now := time.Now()
	order := &tables.Order{
		Id:              uuid.New(),
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		Total:           totals.Total,
		Status:          tables.OrderStatusPending,
		PaymentMethod:   tables.PaymentMethod(req.PaymentMethod),
		DeliveryAddress: req.DeliveryAddress,
		EstablishmentId: establishmentId,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	items := make([]tables.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, tables.OrderItem{
			Id:        uuid.New(),
			OrderId:   order.Id,
			ProductId: line.Product.Id,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			Notes:     line.Notes,
		})
	}

	err = database.RunInTx(ctx, os.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert order: %w", err)
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		os.logger.Error("Failed to create order", gecho.Field("error", err), gecho.Field("customer", req.CustomerName))
		return nil, lib.MapPgError(err)
	}

	order.Items = items

	os.realtimeService.Publish(structs.OrderEvent{
		Type:      "insert",
		OrderId:   order.Id.String(),
		Status:    string(order.Status),
		Timestamp: now,
	})

	go os.notifier.NotifyNewOrder(order, items)

	os.logger.Info("Order created",
		gecho.Field("order_id", order.Id),
		gecho.Field("items", len(items)),
		gecho.Field("total", order.Total.StringFixed(2)),
	)

	return order, nil
}

// lookupCouponDiscount resolves a wheel coupon issued today. Coupons expire
// with the UTC day they were won on.
func (os *OrderService) lookupCouponDiscount(ctx context.Context, code string) (decimal.Decimal, error) {
	if !lib.IsCouponCode(code) {
		return decimal.Zero, fmt.Errorf("invalid coupon code")
	}

	dayStart := time.Now().UTC().Truncate(24 * time.Hour)

	spin, err := database.Query[tables.WheelSpin](os.db).
		Where("coupon_code", code).
		WhereOp("created_at", ">=", dayStart).
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to look up coupon: %w", err)
	}
	if spin == nil {
		return decimal.Zero, fmt.Errorf("coupon not found or expired")
	}

	return spin.DiscountValue, nil
}

// GetOrderWithItems backs the public tracking page: the order, its items,
// and each item's product for display names.
func (os *OrderService) GetOrderWithItems(ctx context.Context, id uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("o.id", id).
		Relation("Items").
		Relation("Items.Product").
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		os.logger.Error("Failed to fetch order", gecho.Field("error", err), gecho.Field("id", id))
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("order not found")
	}
	return order, nil
}

func (os *OrderService) ListOrders(ctx context.Context, opts *structs.OrderListOptions) (*database.PaginationResult[tables.Order], error) {
	if opts == nil {
		opts = &structs.OrderListOptions{}
	}

	query := database.Query[tables.Order](os.db).
		Relation("Items").
		Relation("Items.Product").
		OrderBy("created_at", database.DESC).
		Timeout(10 * time.Second)

	if opts.Status != "" {
		query = query.Where("o.status", opts.Status)
	}
	if opts.PaymentMethod != "" {
		query = query.Where("o.payment_method", opts.PaymentMethod)
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		os.logger.Error("Failed to fetch orders", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return result, nil
}

// UpdateStatus moves an order to any of the six statuses. There is no
// transition table: staff correct mistakes by dragging cards backwards.
func (os *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status tables.OrderStatus) (*tables.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status: %s", status)
	}

	rows, err := database.Query[tables.Order](os.db).
		Where("id", id).
		UpdateReturning(ctx, map[string]any{
			"status":     status,
			"updated_at": time.Now(),
		})
	if err != nil {
		os.logger.Error("Failed to update order status",
			gecho.Field("error", err),
			gecho.Field("id", id),
			gecho.Field("status", status),
		)
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("order not found")
	}

	order := &rows[0]

	os.realtimeService.Publish(structs.OrderEvent{
		Type:      "update",
		OrderId:   order.Id.String(),
		Status:    string(order.Status),
		Timestamp: order.UpdatedAt,
	})

	return order, nil
}

// DeleteOrder removes the order and its items. Items go first; the FK has no
// cascade.
func (os *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	err := database.RunInTx(ctx, os.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().Model((*tables.OrderItem)(nil)).Where("order_id = ?", id).Exec(ctx); err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}

		res, err := tx.NewDelete().Model((*tables.Order)(nil)).Where("id = ?", id).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		affected, _ := res.RowsAffected()
		if affected == 0 {
			return fmt.Errorf("order not found")
		}
		return nil
	})
	if err != nil {
		os.logger.Error("Failed to delete order", gecho.Field("error", err), gecho.Field("id", id))
		return err
	}

	return nil
}

// KanbanColumns returns the per-status order counts for the board header,
// in column order.
func (os *OrderService) KanbanColumns(ctx context.Context) ([]structs.KanbanColumn, error) {
	columns := make([]structs.KanbanColumn, 0, len(tables.OrderStatuses))
	for _, status := range tables.OrderStatuses {
		count, err := database.Query[tables.Order](os.db).
			Where("status", status).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count orders for status %s: %w", status, err)
		}
		columns = append(columns, structs.KanbanColumn{
			Status: string(status),
			Count:  count,
		})
	}
	return columns, nil
}

func (os *OrderService) CountOrders(ctx context.Context) (int, error) {
	return database.Query[tables.Order](os.db).Count(ctx)
}

// TotalSales sums order totals, excluding cancelled orders.
func (os *OrderService) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	orders, err := database.Query[tables.Order](os.db).
		WhereOp("status", "!=", tables.OrderStatusCancelled).
		All(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to fetch orders for sales total: %w", err)
	}

	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Total)
	}
	return total, nil
}
