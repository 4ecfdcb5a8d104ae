package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	CacheNoop   = "noop"
	CacheMemory = "memory"
	CacheRedis  = "redis"

	EventsNoop  = "noop"
	EventsKafka = "kafka"
)

// Переменные окружения с секретами, перекрывают значения из файла
const (
	EnvJWTSecret        = "JWT_SECRET"
	EnvOpenAIAPIKey     = "OPENAI_API_KEY"
	EnvDatabasePassword = "DATABASE_PASSWORD"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Storage    StorageConfig    `toml:"storage"`
	Database   DatabaseConfig   `toml:"database"`
	Auth       AuthConfig       `toml:"auth"`
	Cache      CacheConfig      `toml:"cache"`
	Redis      RedisConfig      `toml:"redis"`
	Events     EventsConfig     `toml:"events"`
	Kafka      KafkaConfig      `toml:"kafka"`
	Chat       ChatConfig       `toml:"chat"`
	OpenAI     OpenAIConfig     `toml:"openai"`
	Completion CompletionConfig `toml:"completion"`
	Seed       SeedConfig       `toml:"seed"`
	Tracing    TracingConfig    `toml:"tracing"`
	CORS       CORSConfig       `toml:"cors"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Backend string `toml:"backend"`
}

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

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
	// TokenTTL время жизни токена в минутах
	TokenTTL int `toml:"token_ttl"`
	// DemoUsers включает встроенные учётные записи admin@example.com и user@example.com
	DemoUsers    bool   `toml:"demo_users"`
	DemoPassword string `toml:"demo_password"`
}

type CacheConfig struct {
	Backend string `toml:"backend"`
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type EventsConfig struct {
	Backend string `toml:"backend"`
}

type KafkaConfig struct {
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
	// WriteTimeout в секундах
	WriteTimeout int `toml:"write_timeout"`
}

type ChatConfig struct {
	Enabled bool `toml:"enabled"`
	// RateLimit запросов в секунду на клиента
	RateLimit float64 `toml:"rate_limit"`
	Burst     int     `toml:"burst"`
	// TrustProxy брать адрес клиента из X-Forwarded-For (сервис за доверенным прокси)
	TrustProxy bool `toml:"trust_proxy"`
}

type OpenAIConfig struct {
	URL         string  `toml:"url"`
	APIKey      string  `toml:"api_key"`
	Model       string  `toml:"model"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	Timeout     int     `toml:"timeout"`
}

type CompletionConfig struct {
	Enabled bool `toml:"enabled"`
	// Interval в секундах
	Interval int `toml:"interval"`
}

type SeedConfig struct {
	Enabled bool `toml:"enabled"`
	// Days количество дней со слотами, начиная с сегодняшнего
	Days             int     `toml:"days"`
	UnavailableRatio float64 `toml:"unavailable_ratio"`
	RandomSeed       int64   `toml:"random_seed"`
}

type TracingConfig struct {
	Enabled     bool    `toml:"enabled"`
	Endpoint    string  `toml:"endpoint"`
	SampleRatio float64 `toml:"sample_ratio"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// секреты из окружения и проверяет результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация для локального запуска без внешних зависимостей
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "bookinghub",
		},
		Storage: StorageConfig{
			Backend: StorageMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "bookinghub",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Auth: AuthConfig{
			Issuer:       "bookinghub",
			TokenTTL:     24 * 60,
			DemoUsers:    true,
			DemoPassword: "password",
		},
		Cache: CacheConfig{
			Backend: CacheMemory,
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "bookinghub:",
		},
		Events: EventsConfig{
			Backend: EventsNoop,
		},
		Kafka: KafkaConfig{
			Topic:        "bookinghub.bookings",
			WriteTimeout: 5,
		},
		Chat: ChatConfig{
			Enabled:   true,
			RateLimit: 1,
			Burst:     5,
		},
		OpenAI: OpenAIConfig{
			URL:         "https://api.openai.com/v1/chat/completions",
			Model:       "gpt-3.5-turbo",
			Temperature: 0.7,
			MaxTokens:   200,
			Timeout:     30,
		},
		Completion: CompletionConfig{
			Enabled:  true,
			Interval: 60,
		},
		Seed: SeedConfig{
			Enabled: true,
			Days:    7,
		},
		Tracing: TracingConfig{
			Endpoint:    "localhost:4317",
			SampleRatio: 1,
		},
	}
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvJWTSecret)); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOpenAIAPIKey)); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		c.Database.Password = v
	}
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535, got %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Backend {
	case StorageMemory:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or %s)", ErrInvalidConfig, EnvJWTSecret)
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("%w: auth.token_ttl must be positive", ErrInvalidConfig)
	}

	switch c.Cache.Backend {
	case CacheNoop, CacheMemory:
	case CacheRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis cache", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown cache.backend %q", ErrInvalidConfig, c.Cache.Backend)
	}

	switch c.Events.Backend {
	case EventsNoop:
	case EventsKafka:
		if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
			return fmt.Errorf("%w: kafka.brokers and kafka.topic are required for kafka events", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown events.backend %q", ErrInvalidConfig, c.Events.Backend)
	}

	if c.Chat.Enabled && (c.Chat.RateLimit <= 0 || c.Chat.Burst <= 0) {
		return fmt.Errorf("%w: chat.rate_limit and chat.burst must be positive", ErrInvalidConfig)
	}

	if c.Completion.Enabled && c.Completion.Interval <= 0 {
		return fmt.Errorf("%w: completion.interval must be positive", ErrInvalidConfig)
	}

	if c.Seed.Days < 0 {
		return fmt.Errorf("%w: seed.days must not be negative", ErrInvalidConfig)
	}
	if c.Seed.UnavailableRatio < 0 || c.Seed.UnavailableRatio > 1 {
		return fmt.Errorf("%w: seed.unavailable_ratio must be in [0, 1]", ErrInvalidConfig)
	}

	if c.Tracing.Enabled && (c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1) {
		return fmt.Errorf("%w: tracing.sample_ratio must be in [0, 1]", ErrInvalidConfig)
	}

	return nil
}
