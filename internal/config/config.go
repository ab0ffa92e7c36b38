package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации приложения.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Storage   StorageConfig   `yaml:"storage"`
	EventBus  EventBusConfig  `yaml:"eventbus"`
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// Denomination: номинал монеты в конфиге.
type Denomination struct {
	Name  string `yaml:"name"`
	Value int64  `yaml:"value"`
}

type WorldConfig struct {
	Seed            int64          `yaml:"seed"`
	TickMS          int            `yaml:"tick_ms"`
	RoundTicks      uint64         `yaml:"round_ticks"`
	TrashFlushTicks uint64         `yaml:"trash_flush_ticks"`
	Denominations   []Denomination `yaml:"denominations"`
}

type StorageConfig struct {
	Driver             string `yaml:"driver"` // memory | badger | redis
	Path               string `yaml:"path"`
	RedisAddr          string `yaml:"redis_addr"`
	SnapshotName       string `yaml:"snapshot_name"`
	SnapshotEveryTicks uint64 `yaml:"snapshot_every_ticks"`
}

type EventBusConfig struct {
	URL       string `yaml:"url"`
	Stream    string `yaml:"stream"`
	Retention int    `yaml:"retention_hours"`
	Buffer    int    `yaml:"buffer"`
}

type ServerConfig struct {
	RESTPort    int `yaml:"rest_port"`
	MetricsPort int `yaml:"metrics_port"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	ServiceName string `yaml:"service_name"`
	Endpoint    string `yaml:"endpoint"`
	Insecure    bool   `yaml:"insecure"`
}

// Default возвращает конфигурацию, с которой сервер стартует без файла.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:            1,
			TickMS:          100,
			RoundTicks:      30,
			TrashFlushTicks: 600,
			Denominations: []Denomination{
				{Name: "copper piece", Value: 1},
				{Name: "silver piece", Value: 10},
				{Name: "gold piece", Value: 100},
				{Name: "platinum piece", Value: 10000},
			},
		},
		Storage: StorageConfig{
			Driver:             "memory",
			Path:               "data/world",
			RedisAddr:          "localhost:6379",
			SnapshotName:       "world",
			SnapshotEveryTicks: 3000,
		},
		EventBus: EventBusConfig{
			Stream:    "WORLD_EVENTS",
			Retention: 24,
			Buffer:    1024,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "acidmud-world",
		},
	}
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "GAME_REST_PORT", 8088)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "GAME_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	// Если порт задан в конфиге и больше 0, используем его
	if configPort > 0 {
		return configPort
	}

	// Пробуем прочитать из environment variable
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	// Используем дефолтное значение
	return defaultPort
}

// Load читает YAML файл конфигурации поверх Default().
// Если path == "", берётся ENV GAME_CONFIG; если и он пуст, возвращаются дефолты.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение конфига %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("разбор конфига %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения, без которых мир не запустится.
func (c *Config) Validate() error {
	var errs []error
	if c.World.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("world.tick_ms must be positive, got %d", c.World.TickMS))
	}
	if c.World.RoundTicks == 0 {
		errs = append(errs, errors.New("world.round_ticks must be positive"))
	}
	if len(c.World.Denominations) == 0 {
		errs = append(errs, errors.New("world.denominations is empty"))
	}
	seen := make(map[int64]bool)
	for _, d := range c.World.Denominations {
		if d.Value <= 0 {
			errs = append(errs, fmt.Errorf("denomination %q: value must be positive", d.Name))
		}
		if seen[d.Value] {
			errs = append(errs, fmt.Errorf("denomination value %d is duplicated", d.Value))
		}
		seen[d.Value] = true
	}
	switch c.Storage.Driver {
	case "memory", "badger", "redis":
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is unknown", c.Storage.Driver))
	}
	return errors.Join(errs...)
}
