package config

import (
	"bigode_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configOnce     sync.Once
)

func GetConfig() *structs.Config {
	configOnce.Do(func() {
		configInstance = &structs.Config{
			Server: &structs.ServerConfig{
				AppName:        getEnvAsString("APP_NAME", "Bigode_no_env"),
				Environment:    getEnvAsString("APP_ENV", "development"),
				Port:           getEnvAsString("APP_PORT", ":8084"),
				CookieDomain:   getEnvAsString("APP_COOKIE_DOMAIN", ""),
				ReadTimeout:    getEnvAsDuration("SERVER_READ_TIME_OUT", 15*time.Second),
				WriteTimeout:   getEnvAsDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
				IdleTimeout:    getEnvAsDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
				MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
			},
			Cors: &structs.CorsConfig{
				AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:5173", "http://localhost:3000"}),
				AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
				AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
				ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length"}),
				AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
				MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
			},
			Database: &structs.DatabaseConfig{
				Host:         getEnvAsString("DB_HOST", "localhost"),
				Port:         getEnvAsInt("DB_PORT", 5432),
				User:         getEnvAsString("DB_USER", "postgres"),
				Password:     getEnvAsString("DB_PASSWORD", "password"),
				Name:         getEnvAsString("DB_NAME", "bigode_db"),
				MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
				MaxIdleTime:  getEnvAsDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
				MaxLifetime:  getEnvAsDuration("DB_MAX_LIFETIME", 30*time.Minute),
				ReadTimeout:  getEnvAsDuration("DB_READ_TIMEOUT", 5*time.Second),
				WriteTimeout: getEnvAsDuration("DB_WRITE_TIMEOUT", 5*time.Second),
			},
			Auth: &structs.AuthConfig{
				AccessTokenSecret:  getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
				AccessTokenExpiry:  getEnvAsDuration("AUTH_ACCESS_TOKEN_EXPIRY", 15*time.Minute),
				RefreshTokenSecret: getEnvAsString("AUTH_REFRESH_TOKEN_SECRET", "default_refresh_secret"),
				RefreshTokenExpiry: getEnvAsDuration("AUTH_REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
			},
			Cache: &structs.CacheConfig{
				Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
				Username:        getEnvAsString("REDIS_USERNAME", ""),
				Password:        getEnvAsString("REDIS_PASSWORD", ""),
				DB:              getEnvAsInt("REDIS_DB", 0),
				PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
				PoolTimeout:     getEnvAsDuration("REDIS_POOL_TIMEOUT", 30*time.Second),
				IdleTimeout:     getEnvAsDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
				DialTimeout:     getEnvAsDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
				ReadTimeout:     getEnvAsDuration("REDIS_READ_TIMEOUT", 3*time.Second),
				WriteTimeout:    getEnvAsDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
				MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
				MinRetryBackoff: getEnvAsDuration("REDIS_MIN_RETRY_BACKOFF", 100*time.Millisecond),
				MaxRetryBackoff: getEnvAsDuration("REDIS_MAX_RETRY_BACKOFF", 2*time.Second),
				MenuTTL:         getEnvAsDuration("CACHE_MENU_TTL", 2*time.Minute),
			},
			RateLimit: &structs.RateLimitConfig{
				Enabled:       getEnvAsBool("RATE_LIMIT_ENABLED", true),
				AuthLimit:     getEnvAsInt("RATE_LIMIT_AUTH", 10),
				AuthWindow:    getEnvAsDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
				AdminLimit:    getEnvAsInt("RATE_LIMIT_ADMIN", 300),
				AdminWindow:   getEnvAsDuration("RATE_LIMIT_ADMIN_WINDOW", time.Minute),
				SpinLimit:     getEnvAsInt("RATE_LIMIT_SPIN", 20),
				SpinWindow:    getEnvAsDuration("RATE_LIMIT_SPIN_WINDOW", time.Minute),
				GeneralLimit:  getEnvAsInt("RATE_LIMIT_GENERAL", 120),
				GeneralWindow: getEnvAsDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
			},
			Storage: &structs.StorageConfig{
				Endpoint:        getEnvAsString("OSS_ENDPOINT", ""),
				Region:          getEnvAsString("OSS_REGION", ""),
				Bucket:          getEnvAsString("OSS_BUCKET", "bigode-product-images"),
				AccessKeyID:     getEnvAsString("OSS_ACCESS_KEY_ID", ""),
				AccessKeySecret: getEnvAsString("OSS_ACCESS_KEY_SECRET", ""),
				PublicBaseURL:   getEnvAsString("OSS_PUBLIC_BASE_URL", ""),
				MaxImageBytes:   getEnvAsInt64("STORAGE_MAX_IMAGE_BYTES", 5*1024*1024), // 5 MB cap from the product form
			},
			Email: &structs.EmailConfig{
				Enabled:      getEnvAsBool("EMAIL_ENABLED", false),
				APIKey:       getEnvAsString("RESEND_API_KEY", ""),
				FromAddress:  getEnvAsString("EMAIL_FROM", "pedidos@bigodelanches.com.br"),
				StaffAddress: getEnvAsString("EMAIL_STAFF", ""),
			},
		}
	})
	return configInstance
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
