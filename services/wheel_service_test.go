package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bigode_server/lib"
	"bigode_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/shopspring/decimal"
)

// ---------- STUBS & FAKES ----------

type fakeSpinStore struct {
	count     int
	countErr  error
	countedIp string
	recorded  []*tables.WheelSpin
}

func (fs *fakeSpinStore) CountSpins(ctx context.Context, ip string, from, to time.Time) (int, error) {
	fs.countedIp = ip
	return fs.count, fs.countErr
}

func (fs *fakeSpinStore) RecordSpin(ctx context.Context, spin *tables.WheelSpin) error {
	fs.recorded = append(fs.recorded, spin)
	return nil
}

type fakeSpinCache struct {
	spun   bool
	err    error
	asked  int
	marked []string
}

func (fc *fakeSpinCache) HasSpun(key string) (bool, error) {
	fc.asked++
	return fc.spun, fc.err
}

func (fc *fakeSpinCache) MarkSpin(key string) error {
	fc.marked = append(fc.marked, key)
	return fc.err
}

func newTestWheelService(store spinStore, cache spinCache) *WheelService {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
	return &WheelService{logger: logger, store: store, cache: cache}
}

// ---------- TESTS ----------

func TestDayBounds(t *testing.T) {
	t.Run("truncates to utc midnight", func(t *testing.T) {
		at := time.Date(2025, 6, 10, 23, 45, 12, 0, time.UTC)
		start, end := DayBounds(at)

		if want := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
			t.Errorf("start = %s, want %s", start, want)
		}
		if want := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC); !end.Equal(want) {
			t.Errorf("end = %s, want %s", end, want)
		}
	})

	t.Run("local time converts to utc day", func(t *testing.T) {
		// 22:00 in São Paulo (UTC-3) is already the next UTC day.
		sp := time.FixedZone("America/Sao_Paulo", -3*60*60)
		at := time.Date(2025, 6, 10, 22, 0, 0, 0, sp)

		start, _ := DayBounds(at)
		if want := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC); !start.Equal(want) {
			t.Errorf("start = %s, want %s", start, want)
		}
	})
}

func TestWheelSegments(t *testing.T) {
	if len(WheelSegments) != 6 {
		t.Fatalf("expected 6 segments, got %d", len(WheelSegments))
	}

	winner := WheelSegments[winningSegmentIndex]
	if winner.Label != "5% de desconto" {
		t.Errorf("winning label = %q", winner.Label)
	}
	if !winner.Discount.Equal(decimal.NewFromInt(5)) {
		t.Errorf("winning discount = %s, want 5", winner.Discount)
	}

	for i, segment := range WheelSegments {
		if i == winningSegmentIndex {
			continue
		}
		if !segment.Discount.IsZero() {
			t.Errorf("segment %d (%s) carries a discount", i, segment.Label)
		}
	}
}

func TestCheckEligibility(t *testing.T) {
	ctx := context.Background()

	t.Run("first spin of the day is eligible", func(t *testing.T) {
		ws := newTestWheelService(&fakeSpinStore{count: 0}, &fakeSpinCache{})

		eligibility, err := ws.CheckEligibility(ctx, "203.0.113.7")
		if err != nil {
			t.Fatalf("CheckEligibility: %v", err)
		}
		if !eligibility.Eligible {
			t.Errorf("first spin not eligible: %s", eligibility.Reason)
		}
	})

	t.Run("second spin same day is rejected", func(t *testing.T) {
		store := &fakeSpinStore{count: 1}
		ws := newTestWheelService(store, &fakeSpinCache{})

		eligibility, err := ws.CheckEligibility(ctx, "203.0.113.7")
		if err != nil {
			t.Fatalf("CheckEligibility: %v", err)
		}
		if eligibility.Eligible {
			t.Error("second spin on the same day allowed")
		}
		if eligibility.Reason != "already spun today" {
			t.Errorf("reason = %q", eligibility.Reason)
		}
		if store.countedIp != "203.0.113.7" {
			t.Errorf("store queried for ip %q", store.countedIp)
		}
	})

	t.Run("cache hit skips the database", func(t *testing.T) {
		store := &fakeSpinStore{countErr: errors.New("should not reach the database")}
		ws := newTestWheelService(store, &fakeSpinCache{spun: true})

		eligibility, err := ws.CheckEligibility(ctx, "203.0.113.7")
		if err != nil {
			t.Fatalf("CheckEligibility: %v", err)
		}
		if eligibility.Eligible {
			t.Error("cached spin allowed again")
		}
	})

	t.Run("cache down falls back to database", func(t *testing.T) {
		cache := &fakeSpinCache{err: errors.New("redis: connection refused")}
		ws := newTestWheelService(&fakeSpinStore{count: 1}, cache)

		eligibility, err := ws.CheckEligibility(ctx, "203.0.113.7")
		if err != nil {
			t.Fatalf("CheckEligibility: %v", err)
		}
		if eligibility.Eligible {
			t.Error("database record ignored when the cache is down")
		}
		if cache.asked != 1 {
			t.Errorf("cache consulted %d times, want 1", cache.asked)
		}
	})

	t.Run("database error surfaces", func(t *testing.T) {
		store := &fakeSpinStore{countErr: errors.New("pg: connection refused")}
		ws := newTestWheelService(store, &fakeSpinCache{})

		if _, err := ws.CheckEligibility(ctx, "203.0.113.7"); err == nil {
			t.Error("expected error when the spin history is unreadable")
		}
	})
}

func TestSpin(t *testing.T) {
	ctx := context.Background()

	t.Run("records the spin and marks the cache", func(t *testing.T) {
		store := &fakeSpinStore{}
		cache := &fakeSpinCache{}
		ws := newTestWheelService(store, cache)

		result, err := ws.Spin(ctx, "203.0.113.7")
		if err != nil {
			t.Fatalf("Spin: %v", err)
		}
		if result.WinningSegment != "5% de desconto" {
			t.Errorf("winning segment = %q", result.WinningSegment)
		}
		if !lib.IsCouponCode(result.CouponCode) {
			t.Errorf("coupon code %q is not well-formed", result.CouponCode)
		}
		if len(store.recorded) != 1 {
			t.Fatalf("recorded %d spins, want 1", len(store.recorded))
		}
		if store.recorded[0].UserIP != "203.0.113.7" {
			t.Errorf("recorded ip = %q", store.recorded[0].UserIP)
		}
		if len(cache.marked) != 1 || !strings.Contains(cache.marked[0], "203.0.113.7") {
			t.Errorf("cache marks = %v", cache.marked)
		}
	})

	t.Run("ineligible ip cannot spin", func(t *testing.T) {
		store := &fakeSpinStore{count: 1}
		ws := newTestWheelService(store, &fakeSpinCache{})

		if _, err := ws.Spin(ctx, "203.0.113.7"); err == nil {
			t.Fatal("second spin of the day succeeded")
		}
		if len(store.recorded) != 0 {
			t.Errorf("rejected spin was recorded")
		}
	})
}
