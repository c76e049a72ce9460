package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type HTTPConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

type DBConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime string
}

type StoreConfig struct {
	Driver  string
	Latency time.Duration
	Seed    bool
}

type LogConfig struct {
	Level string
	File  string
}

type RenewalsConfig struct {
	WindowDays int
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	DB          DBConfig
	Store       StoreConfig
	Log         LogConfig
	Renewals    RenewalsConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AddConfigPath("./internal/config")
	v.AutomaticEnv()

	v.SetDefault("STORE_DRIVER", DriverMemory)
	v.SetDefault("STORE_LATENCY", "300ms")
	v.SetDefault("STORE_SEED", true)
	v.SetDefault("HTTP_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("RENEWAL_WINDOW_DAYS", 30)

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host:            v.GetString("HTTP_HOST"),
			Port:            v.GetInt("HTTP_PORT"),
			ShutdownTimeout: v.GetDuration("HTTP_SHUTDOWN_TIMEOUT"),
			AllowedOrigins:  parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetString("DB_CONN_MAX_LIFETIME"),
		},
		Store: StoreConfig{
			Driver:  strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			Latency: v.GetDuration("STORE_LATENCY"),
			Seed:    v.GetBool("STORE_SEED"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
			File:  v.GetString("LOG_FILE"),
		},
		Renewals: RenewalsConfig{
			WindowDays: v.GetInt("RENEWAL_WINDOW_DAYS"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"*"}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Store.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if cfg.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required for STORE_DRIVER=%s", cfg.Store.Driver)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", cfg.Store.Driver)
	}
	if cfg.Store.Latency < 0 {
		return fmt.Errorf("STORE_LATENCY must not be negative")
	}
	if cfg.Renewals.WindowDays <= 0 {
		return fmt.Errorf("RENEWAL_WINDOW_DAYS must be positive")
	}
	return nil
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
