package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/osse101/SpinSurvive_Go/internal/database"
)

// Config holds the application configuration
type Config struct {
	Port        int    `yaml:"port" validate:"min=1,max=65535"`
	Environment string `yaml:"environment" validate:"required"`
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat   string `yaml:"log_format" validate:"oneof=json text"`
	LogDir      string `yaml:"log_dir"`
	ServiceName string `yaml:"service_name" validate:"required"`
	Version     string `yaml:"version"`

	StoreBackend string `yaml:"store_backend" validate:"oneof=memory file redis postgres"`
	StoreFile    string `yaml:"store_file" validate:"required_if=StoreBackend file"`

	RedisAddr      string `yaml:"redis_addr" validate:"required_if=StoreBackend redis"`
	RedisPassword  string `yaml:"redis_password"`
	RedisDB        int    `yaml:"redis_db" validate:"min=0,max=15"`
	RedisKeyPrefix string `yaml:"redis_key_prefix"`

	DBUser     string `yaml:"db_user" validate:"required_if=StoreBackend postgres"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host" validate:"required_if=StoreBackend postgres"`
	DBPort     string `yaml:"db_port" validate:"required_if=StoreBackend postgres"`
	DBName     string `yaml:"db_name" validate:"required_if=StoreBackend postgres"`
	DBMaxConns int    `yaml:"db_max_conns" validate:"min=1,max=100"`

	CacheSize int           `yaml:"cache_size" validate:"min=0"`
	CacheTTL  time.Duration `yaml:"cache_ttl" validate:"min=0"`

	Timezone       string   `yaml:"timezone" validate:"required,tzname"`
	RandomSource   string   `yaml:"random_source" validate:"oneof=math secure"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AdminAPIKey    string   `yaml:"admin_api_key"`
	TrustedProxies []string `yaml:"trusted_proxies" validate:"dive,ip"`
}

// Defaults returns the configuration used when nothing overrides it
func Defaults() *Config {
	return &Config{
		Port:           DefaultPort,
		Environment:    DefaultEnvironment,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		LogDir:         DefaultLogDir,
		ServiceName:    DefaultServiceName,
		Version:        DefaultVersion,
		StoreBackend:   DefaultStoreBackend,
		StoreFile:      DefaultStoreFile,
		RedisAddr:      DefaultRedisAddr,
		RedisKeyPrefix: DefaultRedisKeyPrefix,
		DBUser:         DefaultDBUser,
		DBPassword:     DefaultDBPassword,
		DBHost:         DefaultDBHost,
		DBPort:         DefaultDBPort,
		DBName:         DefaultDBName,
		DBMaxConns:     DefaultDBMaxConns,
		CacheSize:      DefaultCacheSize,
		CacheTTL:       DefaultCacheTTL,
		Timezone:       DefaultTimezone,
		RandomSource:   DefaultRandomSource,
		AllowedOrigins: splitList(DefaultAllowedOrigins),
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// CONFIG_FILE, then environment variables. The result is validated.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := Defaults()

	if path := getEnv(EnvConfigFile, ""); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.overlayEnv(); err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.StoreBackend = strings.ToLower(cfg.StoreBackend)
	cfg.RandomSource = strings.ToLower(cfg.RandomSource)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(ErrMsgReadConfigFile, path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf(ErrMsgParseConfigFile, path, err)
	}
	return nil
}

func (c *Config) overlayEnv() error {
	if portStr := getEnv(EnvPort, ""); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf(ErrMsgInvalidPort, err)
		}
		c.Port = port
	}

	c.Environment = getEnv(EnvEnvironment, c.Environment)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnv(EnvLogFormat, c.LogFormat)
	c.LogDir = getEnv(EnvLogDir, c.LogDir)
	c.ServiceName = getEnv(EnvServiceName, c.ServiceName)
	c.Version = getEnv(EnvVersion, c.Version)

	c.StoreBackend = getEnv(EnvStoreBackend, c.StoreBackend)
	c.StoreFile = getEnv(EnvStoreFile, c.StoreFile)

	c.RedisAddr = getEnv(EnvRedisAddr, c.RedisAddr)
	c.RedisPassword = getEnv(EnvRedisPassword, c.RedisPassword)
	c.RedisDB = getEnvAsInt(EnvRedisDB, c.RedisDB)
	c.RedisKeyPrefix = getEnv(EnvRedisKeyPrefix, c.RedisKeyPrefix)

	c.DBUser = getEnv(EnvDBUser, c.DBUser)
	c.DBPassword = getEnv(EnvDBPassword, c.DBPassword)
	c.DBHost = getEnv(EnvDBHost, c.DBHost)
	c.DBPort = getEnv(EnvDBPort, c.DBPort)
	c.DBName = getEnv(EnvDBName, c.DBName)
	c.DBMaxConns = getEnvAsInt(EnvDBMaxConns, c.DBMaxConns)

	c.CacheSize = getEnvAsInt(EnvCacheSize, c.CacheSize)
	c.CacheTTL = getEnvAsDuration(EnvCacheTTL, c.CacheTTL)

	c.Timezone = getEnv(EnvTimezone, c.Timezone)
	c.RandomSource = getEnv(EnvRandomSource, c.RandomSource)
	if origins := getEnv(EnvAllowedOrigins, ""); origins != "" {
		c.AllowedOrigins = splitList(origins)
	}
	c.AdminAPIKey = getEnv(EnvAdminAPIKey, c.AdminAPIKey)
	if proxies := getEnv(EnvTrustedProxies, ""); proxies != "" {
		c.TrustedProxies = splitList(proxies)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return database.ConnString(c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Location resolves the configured time zone used for calendar days
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadTimezone, c.Timezone, err)
	}
	return loc, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Environment) {
	case "prod", "production":
		return true
	}
	return false
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse error
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back on absence or parse error
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
