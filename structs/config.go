package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
	Storage   *StorageConfig
	Email     *EmailConfig
}

type ServerConfig struct {
	AppName        string        // Bigode Lanches
	Environment    string        // development, production
	Port           string        // :8084
	CookieDomain   string        // cross-subdomain cookies in production
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MaxIdleTime  time.Duration
	MaxLifetime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	MenuTTL         time.Duration
}

type RateLimitConfig struct {
	Enabled bool

	AuthLimit  int
	AuthWindow time.Duration

	AdminLimit  int
	AdminWindow time.Duration

	SpinLimit  int
	SpinWindow time.Duration

	GeneralLimit  int
	GeneralWindow time.Duration
}

type StorageConfig struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	AccessKeySecret string
	PublicBaseURL   string
	MaxImageBytes   int64
}

type EmailConfig struct {
	Enabled      bool
	APIKey       string
	FromAddress  string
	StaffAddress string
}
