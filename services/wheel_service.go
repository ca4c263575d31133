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

// WheelSegments is the wheel layout sent to the storefront. Only the 5%
// segment ever wins; the rest give the animation something to land near.
var WheelSegments = []structs.WheelSegment{
	{Label: "Tente novamente", Discount: decimal.Zero},
	{Label: "5% de desconto", Discount: decimal.NewFromInt(5)},
	{Label: "Quase!", Discount: decimal.Zero},
	{Label: "Gire amanhã", Discount: decimal.Zero},
	{Label: "Não foi dessa vez", Discount: decimal.Zero},
	{Label: "Por pouco!", Discount: decimal.Zero},
}

const winningSegmentIndex = 1

// spinStore is the slice of the database the once-per-day gate needs.
// Postgres backs it in production; tests use an in-memory fake.
type spinStore interface {
	CountSpins(ctx context.Context, ip string, from, to time.Time) (int, error)
	RecordSpin(ctx context.Context, spin *tables.WheelSpin) error
}

// spinCache is the fast path in front of the store. *CacheService satisfies it.
type spinCache interface {
	HasSpun(key string) (bool, error)
	MarkSpin(key string) error
}

type dbSpinStore struct {
	db *database.DB
}

func (s *dbSpinStore) CountSpins(ctx context.Context, ip string, from, to time.Time) (int, error) {
	return database.Query[tables.WheelSpin](s.db).
		Where("user_ip", ip).
		WhereOp("created_at", ">=", from).
		WhereOp("created_at", "<", to).
		Count(ctx)
}

func (s *dbSpinStore) RecordSpin(ctx context.Context, spin *tables.WheelSpin) error {
	_, err := database.Query[tables.WheelSpin](s.db).Insert(ctx, spin)
	return err
}

type WheelService struct {
	logger *gecho.Logger
	store  spinStore
	cache  spinCache
}

func NewWheelService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *WheelService {
	return &WheelService{logger: logger, store: &dbSpinStore{db: db}, cache: cacheService}
}

// DayBounds returns the UTC start of the day containing t and the start of
// the next day. Eligibility resets at UTC midnight regardless of the
// customer's local timezone.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := t.UTC().Truncate(24 * time.Hour)
	return start, start.Add(24 * time.Hour)
}

// CheckEligibility reports whether the IP may spin today. Redis answers the
// common case; the database is authoritative when the cache has no record or
// is down.
func (ws *WheelService) CheckEligibility(ctx context.Context, ip string) (*structs.SpinEligibility, error) {
	dayStart, dayEnd := DayBounds(time.Now())
	key := lib.FormatSpinKey(ip, dayStart.Format("2006-01-02"))

	spun, err := ws.cache.HasSpun(key)
	if err != nil {
		ws.logger.Warn("Spin cache unavailable, falling back to database", gecho.Field("error", err))
	} else if spun {
		return &structs.SpinEligibility{Eligible: false, Reason: "already spun today"}, nil
	}

	count, err := ws.store.CountSpins(ctx, ip, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to check spin history: %w", err)
	}
	if count > 0 {
		return &structs.SpinEligibility{Eligible: false, Reason: "already spun today"}, nil
	}

	return &structs.SpinEligibility{Eligible: true}, nil
}

// Spin records the spin and issues the coupon. Every spin wins the fixed 5%
// segment; "losing" segments are a storefront animation, never an outcome.
func (ws *WheelService) Spin(ctx context.Context, ip string) (*structs.SpinResult, error) {
	eligibility, err := ws.CheckEligibility(ctx, ip)
	if err != nil {
		return nil, err
	}
	if !eligibility.Eligible {
		return nil, fmt.Errorf("not eligible to spin: %s", eligibility.Reason)
	}

	segment := WheelSegments[winningSegmentIndex]
	code := lib.GenerateCouponCode()

	spin := &tables.WheelSpin{
		Id:             uuid.New(),
		UserIP:         ip,
		WinningSegment: segment.Label,
		DiscountValue:  segment.Discount,
		CouponCode:     code,
		CreatedAt:      time.Now(),
	}

	if err := ws.store.RecordSpin(ctx, spin); err != nil {
		ws.logger.Error("Failed to record wheel spin", gecho.Field("error", err), gecho.Field("ip", ip))
		return nil, lib.MapPgError(err)
	}

	dayStart, _ := DayBounds(spin.CreatedAt)
	key := lib.FormatSpinKey(ip, dayStart.Format("2006-01-02"))
	if err := ws.cache.MarkSpin(key); err != nil {
		ws.logger.Warn("Failed to mark spin in cache", gecho.Field("error", err))
	}

	ws.logger.Info("Wheel spin won", gecho.Field("ip", ip), gecho.Field("coupon", code))

	return &structs.SpinResult{
		WinningSegment: segment.Label,
		DiscountValue:  segment.Discount,
		CouponCode:     code,
		SegmentIndex:   winningSegmentIndex,
	}, nil
}
