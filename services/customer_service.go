package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"bigode_server/database"
	"bigode_server/structs"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/shopspring/decimal"
)

// Customer segmentation thresholds. VIP when either is exceeded; inactive
// when the last order is older than the cutoff.
var (
	vipSpendThreshold  = decimal.NewFromInt(200)
	vipOrderThreshold  = 10
	inactiveCutoffDays = 30
)

type CustomerService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCustomerService(logger *gecho.Logger, db *database.DB) *CustomerService {
	return &CustomerService{logger: logger, db: db}
}

// ClassifyCustomer applies the segmentation rules. Inactive wins over VIP:
// a big spender who stopped ordering is someone to win back, not to badge.
func ClassifyCustomer(totalSpent decimal.Decimal, totalOrders int, lastOrder time.Time, now time.Time) structs.CustomerSegment {
	if now.Sub(lastOrder) > time.Duration(inactiveCutoffDays)*24*time.Hour {
		return structs.SegmentInactive
	}
	if totalSpent.GreaterThan(vipSpendThreshold) || totalOrders > vipOrderThreshold {
		return structs.SegmentVIP
	}
	return structs.SegmentRegular
}

// BuildProfiles groups orders by normalized name+phone and aggregates them
// into customer profiles, sorted by total spent descending.
func BuildProfiles(orders []tables.Order, now time.Time) []structs.CustomerProfile {
	type bucket struct {
		name      string
		phone     string
		orders    int
		spent     decimal.Decimal
		lastOrder time.Time
	}

	buckets := make(map[string]*bucket)
	for _, order := range orders {
		if order.Status == tables.OrderStatusCancelled {
			continue
		}

		key := customerKey(order.CustomerName, order.CustomerPhone)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{
				name:  order.CustomerName,
				phone: order.CustomerPhone,
				spent: decimal.Zero,
			}
			buckets[key] = b
		}

		b.orders++
		b.spent = b.spent.Add(order.Total)
		if order.CreatedAt.After(b.lastOrder) {
			b.lastOrder = order.CreatedAt
		}
	}

	profiles := make([]structs.CustomerProfile, 0, len(buckets))
	for _, b := range buckets {
		avg := decimal.Zero
		if b.orders > 0 {
			avg = b.spent.Div(decimal.NewFromInt(int64(b.orders))).Round(2)
		}
		profiles = append(profiles, structs.CustomerProfile{
			Name:               b.name,
			Phone:              b.phone,
			TotalOrders:        b.orders,
			TotalSpent:         b.spent,
			AvgOrderValue:      avg,
			LastOrderDate:      b.lastOrder,
			DaysSinceLastOrder: int(now.Sub(b.lastOrder).Hours() / 24),
			Segment:            ClassifyCustomer(b.spent, b.orders, b.lastOrder, now),
		})
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].TotalSpent.GreaterThan(profiles[j].TotalSpent)
	})

	return profiles
}

func customerKey(name, phone string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.TrimSpace(phone)
}

// ListProfiles aggregates all orders into customer profiles. The whole order
// table fits in memory at this scale; no windowing.
func (cs *CustomerService) ListProfiles(ctx context.Context) ([]structs.CustomerProfile, error) {
	orders, err := database.Query[tables.Order](cs.db).
		OrderBy("created_at", database.DESC).
		Timeout(15 * time.Second).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to fetch orders for customer profiles", gecho.Field("error", err))
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return BuildProfiles(orders, time.Now()), nil
}

// Stats counts the customer base per segment for the analytics header.
func (cs *CustomerService) Stats(ctx context.Context) (*structs.CustomerStats, error) {
	profiles, err := cs.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	stats := &structs.CustomerStats{Total: len(profiles)}
	for _, p := range profiles {
		switch p.Segment {
		case structs.SegmentVIP:
			stats.VIP++
		case structs.SegmentInactive:
			stats.Inactive++
		}
	}
	return stats, nil
}
