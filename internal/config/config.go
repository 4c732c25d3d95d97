package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string `validate:"required"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	DBUser            string `validate:"required"`
	DBPassword        string
	DBHost            string `validate:"required"`
	DBPort            string `validate:"required,numeric"`
	DBName            string `validate:"required"`
	DBMaxConns        int    `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string   `validate:"required"` // API key for authentication
	TrustedProxies []string `validate:"dive,ip"`
	MaxBodyBytes   int64    `validate:"min=1"`

	CatalogPath string `validate:"required"`

	// Daily aging
	DailyTickEnabled  bool
	DailyTickHour     int `validate:"min=0,max=23"`
	DailyTickTZOffset int `validate:"min=-12,max=14"` // hours east of UTC

	StockGaugeInterval time.Duration `validate:"min=1s"`

	CacheSize int           `validate:"min=1"`
	CacheTTL  time.Duration `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "gildedrose"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsSlice("TRUSTED_PROXIES"),
		MaxBodyBytes:   int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		CatalogPath:    getEnv("CATALOG_PATH", ConfigPathCatalog),

		DailyTickEnabled:  getEnvAsBool("DAILY_TICK_ENABLED", true),
		DailyTickHour:     getEnvAsInt("DAILY_TICK_HOUR", DefaultDailyTickHour),
		DailyTickTZOffset: getEnvAsInt("DAILY_TICK_TZ_OFFSET", 0),

		StockGaugeInterval: getEnvAsDuration("STOCK_GAUGE_INTERVAL", DefaultStockGaugeInterval),

		CacheSize: getEnvAsInt("CACHE_SIZE", DefaultCacheSize),
		CacheTTL:  getEnvAsDuration("CACHE_TTL", DefaultCacheTTL),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the populated struct against its tags
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// TickLocation returns the fixed zone used to schedule the daily tick
func (c *Config) TickLocation() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC%+d", c.DailyTickTZOffset), c.DailyTickTZOffset*int(time.Hour/time.Second))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsSlice splits a comma-separated variable, dropping blanks
func getEnvAsSlice(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsInt parses an integer, falling back to the default on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return i
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
