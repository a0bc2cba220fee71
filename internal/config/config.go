package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, read once at startup.
type Config struct {
	DatabaseURL       string
	Port              string
	Env               string
	DBMaxConns        int32
	RequestTimeout    time.Duration
	LowStockThreshold int
	LowStockInterval  time.Duration
}

func Load() *Config {
	return &Config{
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		Port:              getEnv("PORT", "8080"),
		Env:               getEnv("ENV", "development"),
		DBMaxConns:        int32(getEnvInt("DB_MAX_CONNS", 10)),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		LowStockThreshold: getEnvInt("LOW_STOCK_THRESHOLD", 10),
		LowStockInterval:  getEnvDuration("LOW_STOCK_INTERVAL", 0),
	}
}

// IsDevelopment reports whether error details may be exposed in responses.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
