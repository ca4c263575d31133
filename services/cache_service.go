package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"bigode_server/config"
	"bigode_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// CacheService provides Redis caching with connection pooling. All methods
// fail soft: a cache error is surfaced to the caller, who falls back to the
// database.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:        cfg.Cache.PoolSize,
			MinIdleConns:    cfg.Cache.MinIdleConns,
			PoolTimeout:     cfg.Cache.PoolTimeout,
			ConnMaxIdleTime: cfg.Cache.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

func (cs *CacheService) Health() error {
	ctx, cancel := context.WithTimeout(redisCtx, 2*time.Second)
	defer cancel()
	return cs.client.Ping(ctx).Err()
}

// SetJSON marshals v and stores it under key with the given TTL.
func (cs *CacheService) SetJSON(key string, v any, ttl time.Duration) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return cs.client.Set(redisCtx, key, payload, ttl).Err()
}

// GetJSON loads key into v. A cache miss returns (false, nil).
func (cs *CacheService) GetJSON(key string, v any) (bool, error) {
	payload, err := cs.client.Get(redisCtx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		// Corrupt entry; drop it so the next read repopulates
		cs.client.Del(redisCtx, key)
		return false, fmt.Errorf("failed to unmarshal cached value: %w", err)
	}
	return true, nil
}

func (cs *CacheService) Delete(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return cs.client.Del(redisCtx, keys...).Err()
}

// InvalidateMenu drops the cached storefront menu. Called from every catalog
// mutation so the public page never serves stale products for longer than a
// write takes.
func (cs *CacheService) InvalidateMenu() {
	if err := cs.Delete(MenuCacheKey); err != nil {
		cs.logger.Warn("Failed to invalidate menu cache", gecho.Field("error", err))
	}
}

// MenuCacheKey stores the composed public menu payload.
const MenuCacheKey = "storefront:menu"

// IncrementRateLimit atomically increments a sliding rate-limit counter and
// returns the current count in the window.
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	pipe := cs.client.TxPipeline()
	incr := pipe.Incr(redisCtx, key)
	pipe.ExpireNX(redisCtx, key, window)
	if _, err := pipe.Exec(redisCtx); err != nil {
		return 0, err
	}

	return int(incr.Val()), nil
}

// MarkSpin records a wheel spin for the IP+day pair so eligibility checks can
// skip the database. The TTL outlives the UTC day the key encodes.
func (cs *CacheService) MarkSpin(key string) error {
	return cs.client.Set(redisCtx, key, "1", 48*time.Hour).Err()
}

// HasSpun reports whether a spin was recorded for the IP+day pair.
func (cs *CacheService) HasSpun(key string) (bool, error) {
	n, err := cs.client.Exists(redisCtx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
