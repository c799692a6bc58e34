package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Переменные окружения с ключом генератора текстов (первая непустая побеждает)
var apiKeyEnvVars = []string{"GEMINI_API_KEY", "API_KEY"}

type Config struct {
	Server  ServerConfig  `toml:"server"`
	Storage StorageConfig `toml:"storage"`
	Logs    LogsConfig    `toml:"logs"`
	Metrics MetricsConfig `toml:"metrics"`
	Tracing TracingConfig `toml:"tracing"`
	Booking BookingConfig `toml:"booking"`
	Insight InsightConfig `toml:"insight"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type StorageConfig struct {
	Backend  string         `toml:"backend"` // memory | postgres | redis
	Postgres PostgresConfig `toml:"postgres"`
	Redis    RedisConfig    `toml:"redis"`
}

type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - вывод в stdout
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type TracingConfig struct {
	Enabled      bool    `toml:"enabled"`
	ServiceName  string  `toml:"service_name"`
	OTLPEndpoint string  `toml:"otlp_endpoint"`
	SampleRatio  float64 `toml:"sample_ratio"`
}

type BookingConfig struct {
	SubmitDelayMs     *int   `toml:"submit_delay_ms"` // nil - по умолчанию, 0 - без паузы
	FlowIdleTTL       int    `toml:"flow_idle_ttl"`   // минуты
	FlowSweepSchedule string `toml:"flow_sweep_schedule"`
}

type InsightConfig struct {
	APIKey           string `toml:"api_key"`
	Model            string `toml:"model"`
	Timeout          int    `toml:"timeout"`           // секунды, один запрос к генератору
	DashboardTimeout int    `toml:"dashboard_timeout"` // секунды, фоновый инсайт панели
}

// Load читает .env (если есть), затем TOML файл, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() {
	for _, name := range apiKeyEnvVars {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			c.Insight.APIKey = v
			break
		}
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		c.Storage.Postgres.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Storage.Redis.Password = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 10)
	setDefault(&c.Server.WriteTimeout, 30)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 15)

	setDefault(&c.Storage.Backend, StorageMemory)
	setDefault(&c.Storage.Postgres.Host, "localhost")
	setDefault(&c.Storage.Postgres.Port, 5432)
	setDefault(&c.Storage.Postgres.SSLMode, "disable")
	setDefault(&c.Storage.Postgres.MaxOpenConns, 10)
	setDefault(&c.Storage.Postgres.MaxIdleConns, 5)
	setDefault(&c.Storage.Postgres.ConnMaxLifetime, 300)
	setDefault(&c.Storage.Redis.Addr, "localhost:6379")
	setDefault(&c.Storage.Redis.KeyPrefix, "luxebook:")

	setDefault(&c.Logs.Level, "info")

	setDefault(&c.Metrics.ServiceName, "luxebook")
	setDefault(&c.Metrics.Path, "/metrics")

	setDefault(&c.Tracing.ServiceName, "luxebook")
	setDefault(&c.Tracing.OTLPEndpoint, "localhost:4317")
	setDefault(&c.Tracing.SampleRatio, 1.0)

	setDefaultPtr(&c.Booking.SubmitDelayMs, 800)
	setDefault(&c.Booking.FlowIdleTTL, 30)
	setDefault(&c.Booking.FlowSweepSchedule, "@every 5m")

	setDefault(&c.Insight.Model, "gemini-2.5-flash")
	setDefault(&c.Insight.Timeout, 15)
	setDefault(&c.Insight.DashboardTimeout, 20)
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case StorageMemory, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be a valid TCP port (got %d)", c.Server.HTTPPort)
	}
	if c.Booking.SubmitDelayMs != nil && *c.Booking.SubmitDelayMs < 0 {
		return fmt.Errorf("booking.submit_delay_ms must not be negative (got %d)", *c.Booking.SubmitDelayMs)
	}
	return nil
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// setDefaultPtr заполняет только отсутствующее в файле значение; явный ноль сохраняется
func setDefaultPtr[T any](field **T, value T) {
	if *field == nil {
		*field = &value
	}
}

// DSN строка подключения для lib/pq
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

func (b BookingConfig) SubmitDelay() time.Duration {
	if b.SubmitDelayMs == nil {
		return 0
	}
	return time.Duration(*b.SubmitDelayMs) * time.Millisecond
}

func (b BookingConfig) IdleTTL() time.Duration {
	return time.Duration(b.FlowIdleTTL) * time.Minute
}

func (i InsightConfig) RequestTimeout() time.Duration {
	return time.Duration(i.Timeout) * time.Second
}

func (i InsightConfig) DashboardInsightTimeout() time.Duration {
	return time.Duration(i.DashboardTimeout) * time.Second
}
