package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/RCM-BookingService/internal/domain"
)

// Config конфигурация сервиса, загружается из TOML файла
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Database        DatabaseConfig        `toml:"database"`
	Logs            LogsConfig            `toml:"logs"`
	Metrics         MetricsConfig         `toml:"metrics"`
	ResidentService ResidentServiceConfig `toml:"resident_service"`
	Redis           RedisConfig           `toml:"redis"`
	RabbitMQ        RabbitMQConfig        `toml:"rabbitmq"`
	Overstay        OverstayConfig        `toml:"overstay"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
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

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ResidentServiceConfig настройки клиента ResidentService
type ResidentServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// RedisConfig настройки кеша ответов публичных GET endpoint-ов
type RedisConfig struct {
	Enabled     bool   `toml:"enabled"`
	Addr        string `toml:"addr"`
	Password    string `toml:"password"`
	DB          int    `toml:"db"`
	CacheTTL    int    `toml:"cache_ttl"` // секунды
	CachePrefix string `toml:"cache_prefix"`
}

// RabbitMQConfig настройки публикации доменных событий
type RabbitMQConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
}

// OverstayConfig единственный источник лимитов пребывания посетителей
// Ключ - тип посетителя, значение - лимит в минутах
type OverstayConfig struct {
	Limits map[string]int `toml:"limits"`
}

// OverstayLimits возвращает сконфигурированную таблицу лимитов
// или дефолтную, если в конфиге таблица не задана
func (c *OverstayConfig) OverstayLimits() domain.OverstayLimits {
	if len(c.Limits) == 0 {
		return domain.DefaultOverstayLimits
	}
	return domain.OverstayLimits(c.Limits)
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.File == "" {
		c.Logs.File = "logs/app.log"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "rcm-booking-service"
	}
	if c.ResidentService.Timeout == 0 {
		c.ResidentService.Timeout = 5
	}
	if c.Redis.CacheTTL == 0 {
		c.Redis.CacheTTL = 60
	}
	if c.Redis.CachePrefix == "" {
		c.Redis.CachePrefix = "rcm:booking:cache"
	}
}

func (c *Config) validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.dbname is required")
	}
	if c.ResidentService.URL == "" {
		return fmt.Errorf("config: resident_service.url is required")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("config: redis.addr is required when redis is enabled")
	}
	if c.RabbitMQ.Enabled && c.RabbitMQ.URL == "" {
		return fmt.Errorf("config: rabbitmq.url is required when rabbitmq is enabled")
	}
	return nil
}
