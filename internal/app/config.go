package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/yungbote/dinocatalog-backend/internal/data/db"
	"github.com/yungbote/dinocatalog-backend/internal/observability"
)

const (
	EnvPrefix      = "DINO"
	BackendMemory  = "memory"
	Version        = "2.0.0"
	CatalogUpdated = "2025-01-24"
)

type Config struct {
	Env   string      `mapstructure:"env"`
	HTTP  HTTPConfig  `mapstructure:"http"`
	Store StoreConfig `mapstructure:"store"`
	Otel  OtelConfig  `mapstructure:"otel"`
}

type HTTPConfig struct {
	Addr              string        `mapstructure:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type StoreConfig struct {
	Backend         string        `mapstructure:"backend"`
	DSN             string        `mapstructure:"dsn"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	QueryTimeout    time.Duration `mapstructure:"query_timeout"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type OtelConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
	Exporter    string  `mapstructure:"exporter"`
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	Headers     string  `mapstructure:"headers"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")

	v.SetDefault("http.addr", ":8000")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.sqlite_path", "dinocatalog.db")
	v.SetDefault("store.query_timeout", 5*time.Second)
	v.SetDefault("store.max_open_conns", 10)
	v.SetDefault("store.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.service_name", "dinocatalog")
	v.SetDefault("otel.sample_ratio", 0.1)
	v.SetDefault("otel.exporter", observability.ExporterStdout)
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.insecure", false)
	v.SetDefault("otel.headers", "")
}

// LoadConfig resolves defaults, then the optional config file, then the
// environment (DINO_HTTP_ADDR for http.addr and so on). DATABASE_URL and
// LOG_MODE are honoured as aliases for store.dsn and env.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("store.dsn", EnvPrefix+"_STORE_DSN", "DATABASE_URL"); err != nil {
		return Config{}, err
	}
	if err := v.BindEnv("env", EnvPrefix+"_ENV", "LOG_MODE"); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	switch c.Store.Backend {
	case BackendMemory, db.BackendSQLite:
	case db.BackendPostgres:
		if strings.TrimSpace(c.Store.DSN) == "" {
			errs = append(errs, errors.New("store.dsn (or DATABASE_URL) is required for the postgres backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.backend: %q is not one of memory, postgres, sqlite", c.Store.Backend))
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, errors.New("http.addr is required"))
	}
	if c.Store.QueryTimeout <= 0 {
		errs = append(errs, errors.New("store.query_timeout must be positive"))
	}
	if c.Otel.SampleRatio < 0 || c.Otel.SampleRatio > 1 {
		errs = append(errs, fmt.Errorf("otel.sample_ratio must be within 0..1, got %v", c.Otel.SampleRatio))
	}
	switch strings.ToLower(c.Otel.Exporter) {
	case observability.ExporterStdout, observability.ExporterOTLP:
	default:
		errs = append(errs, fmt.Errorf("otel.exporter: %q is not one of stdout, otlp", c.Otel.Exporter))
	}
	return errors.Join(errs...)
}
