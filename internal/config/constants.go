package config

import "time"

// Environment variable names
const (
	EnvConfigFile     = "CONFIG_FILE"
	EnvPort           = "PORT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvLogDir         = "LOG_DIR"
	EnvServiceName    = "SERVICE_NAME"
	EnvVersion        = "VERSION"
	EnvStoreBackend   = "STORE_BACKEND"
	EnvStoreFile      = "STORE_FILE"
	EnvRedisAddr      = "REDIS_ADDR"
	EnvRedisPassword  = "REDIS_PASSWORD"
	EnvRedisDB        = "REDIS_DB"
	EnvRedisKeyPrefix = "REDIS_KEY_PREFIX"
	EnvDBUser         = "DB_USER"
	EnvDBPassword     = "DB_PASSWORD"
	EnvDBHost         = "DB_HOST"
	EnvDBPort         = "DB_PORT"
	EnvDBName         = "DB_NAME"
	EnvDBMaxConns     = "DB_MAX_CONNS"
	EnvCacheSize      = "CACHE_SIZE"
	EnvCacheTTL       = "CACHE_TTL"
	EnvTimezone       = "TIMEZONE"
	EnvRandomSource   = "RANDOM_SOURCE"
	EnvAllowedOrigins = "ALLOWED_ORIGINS"
	EnvAdminAPIKey    = "ADMIN_API_KEY"
	EnvTrustedProxies = "TRUSTED_PROXIES"
)

// Defaults
const (
	DefaultPort           = 8080
	DefaultEnvironment    = "dev"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogDir         = "logs"
	DefaultServiceName    = "spin-survive"
	DefaultVersion        = "dev"
	DefaultStoreBackend   = "memory"
	DefaultStoreFile      = "data/spin_survive.json"
	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisKeyPrefix = "spin-survive:"
	DefaultDBUser         = "postgres"
	DefaultDBPassword     = "postgres"
	DefaultDBHost         = "localhost"
	DefaultDBPort         = "5432"
	DefaultDBName         = "spinsurvive"
	DefaultDBMaxConns     = 5
	DefaultCacheSize      = 64
	DefaultCacheTTL       = 5 * time.Minute
	DefaultTimezone       = "Local"
	DefaultRandomSource   = "math"
	DefaultAllowedOrigins = "http://localhost:5173,http://localhost:8080"

	// ExampleDBPassword is the value shipped in .env.example
	ExampleDBPassword = "change_this_secure_password"
)

// Random source names
const (
	RandomSourceMath   = "math"
	RandomSourceSecure = "secure"
)

// Error messages
const (
	ErrMsgReadConfigFile  = "failed to read config file %s: %w"
	ErrMsgParseConfigFile = "failed to parse config file %s: %w"
	ErrMsgInvalidPort     = "invalid PORT value: %w"
	ErrMsgInvalidConfig   = "invalid configuration: %s"
	ErrMsgLoadTimezone    = "failed to load timezone %s: %w"
)
