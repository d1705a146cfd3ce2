package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	Recommender RecommenderConfig `toml:"recommender"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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

// RecommenderConfig настройки внешнего сервиса рекомендаций категорий
type RecommenderConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// defaultConfig значения по умолчанию, перекрываются файлом
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "logs/app.log",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "marketplace-service",
		},
		Recommender: RecommenderConfig{
			URL:     "https://generativelanguage.googleapis.com",
			Model:   "gemini-2.0-flash",
			Timeout: 10,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port: %d", c.Server.HTTPPort)
	}
	if c.Logs.File == "" {
		return fmt.Errorf("config: logs.file must not be empty")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path must not be empty when metrics are enabled")
	}
	if c.Recommender.URL == "" {
		return fmt.Errorf("config: recommender.url must not be empty")
	}
	if c.Recommender.Timeout <= 0 {
		return fmt.Errorf("config: recommender.timeout must be positive")
	}
	return nil
}
