package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Telegram TelegramConfig `toml:"telegram"`
	Stripe   StripeConfig   `toml:"stripe"`
	Admin    AdminConfig    `toml:"admin"`
	Session  SessionConfig  `toml:"session"`
}

// ServerConfig настройки HTTP-сервера админ-панели
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	PublicURL       string `toml:"public_url"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// TelegramConfig настройки Telegram-бота
type TelegramConfig struct {
	Token       string `toml:"token"`
	PollTimeout int    `toml:"poll_timeout"`
}

// StripeConfig настройки платежного провайдера
// Пустой APIKey означает, что оплата не настроена: бронирования подтверждаются
// без платежной ссылки
type StripeConfig struct {
	APIKey        string `toml:"api_key"`
	WebhookSecret string `toml:"webhook_secret"`
	Currency      string `toml:"currency"`
}

// Enabled сообщает, настроен ли платежный провайдер
func (s StripeConfig) Enabled() bool {
	return s.APIKey != ""
}

// AdminConfig настройки администраторского доступа
type AdminConfig struct {
	Password string `toml:"password"`
}

// SessionConfig настройки хранилища диалоговых сессий
type SessionConfig struct {
	TTLMinutes   int `toml:"ttl_minutes"`
	SweepMinutes int `toml:"sweep_minutes"`
}

// Load читает конфигурацию из TOML-файла
// Секреты могут быть переопределены переменными окружения:
// TELEGRAM_BOT_TOKEN, STRIPE_API_KEY, STRIPE_WEBHOOK_SECRET, MASTER_PASSWORD,
// POSTGRES_PASSWORD
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("config: telegram token is required (config.toml or TELEGRAM_BOT_TOKEN)")
	}
	if cfg.Admin.Password == "" {
		return nil, fmt.Errorf("config: admin password is required (config.toml or MASTER_PASSWORD)")
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			PublicURL:       "http://localhost:8080",
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "petuser",
			DBName:          "pet_hotel",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "ph-booking-bot",
			Path:        "/metrics",
		},
		Telegram: TelegramConfig{
			PollTimeout: 60,
		},
		Stripe: StripeConfig{
			Currency: "usd",
		},
		Session: SessionConfig{
			TTLMinutes:   30,
			SweepMinutes: 5,
		},
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}
	if v := os.Getenv("STRIPE_API_KEY"); v != "" {
		cfg.Stripe.APIKey = v
	}
	if v := os.Getenv("STRIPE_WEBHOOK_SECRET"); v != "" {
		cfg.Stripe.WebhookSecret = v
	}
	if v := os.Getenv("MASTER_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("POSTGRES_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
}
