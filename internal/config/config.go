package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Auth    Auth    `validate:"required"`
	Backend Backend `validate:"required"`
	Gateway Gateway `validate:"required"`

	RateLimit RateLimit

	Session    Cache
	OrderCache Cache

	Kafka    Kafka
	Postgres Postgres
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

// Auth JWTSecret общий с бекендом ключ HS256, которым подписаны токены пользователей.
type Auth struct {
	JWTSecret string `validate:"required,min=8"`
}

// RateLimit лимиты запросов на одного пользователя. Submit отдельный, более строгий лимит
// на запуск оформления.
type RateLimit struct {
	Enabled bool
	RPS     float64       `validate:"required_if=Enabled true,gte=0"`
	Burst   int           `validate:"required_if=Enabled true,gte=0"`
	Submit  Limit
	TTL     time.Duration `validate:"required_if=Enabled true,gte=0"`
	MaxKeys int           `validate:"required_if=Enabled true,gte=0"`
}

type Limit struct {
	RPS   float64 `validate:"gte=0"`
	Burst int     `validate:"gte=0"`
}

type Backend struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

// Gateway настройки виджета оплаты. KeyID публичный ключ, секрет хранится только на бекенде.
type Gateway struct {
	KeyID       string `validate:"required"`
	ScriptURL   string `validate:"required,url"`
	Currency    string `validate:"required,len=3,uppercase"`
	StoreName   string `validate:"required"`
	Description string
	ThemeColor  string `validate:"omitempty,hexcolor"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Kafka struct {
	Enabled bool
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

	BatchTimeout time.Duration `validate:"gte=0"`
}

// Postgres используется только журналом попыток оформления.
type Postgres struct {
	Enabled  bool
	Host     string `validate:"required_if=Enabled true"`
	Port     int    `validate:"gte=0,lte=65535"`
	DBName   string `validate:"required_if=Enabled true"`
	User     string `validate:"required_if=Enabled true"`
	Password string `validate:"required_if=Enabled true"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		RateLimit: RateLimit{
			Enabled: envBool("RATE_LIMIT_ENABLED", true),
			RPS:     envFloat("RATE_LIMIT_RPS", 10),
			Burst:   envInt("RATE_LIMIT_BURST", 20),
			Submit: Limit{
				RPS:   envFloat("RATE_LIMIT_SUBMIT_RPS", 0.2),
				Burst: envInt("RATE_LIMIT_SUBMIT_BURST", 3),
			},
			TTL:     envDuration("RATE_LIMIT_TTL", 10*time.Minute),
			MaxKeys: envInt("RATE_LIMIT_MAX_KEYS", 100000),
		},

		Backend: Backend{
			BaseURL: env("BACKEND_BASE_URL", "http://localhost:8081"),
			Timeout: envDuration("BACKEND_TIMEOUT", 10*time.Second),
		},

		Gateway: Gateway{
			KeyID:       env("GATEWAY_KEY_ID", ""),
			ScriptURL:   env("GATEWAY_SCRIPT_URL", "https://checkout.razorpay.com/v1/checkout.js"),
			Currency:    env("GATEWAY_CURRENCY", "INR"),
			StoreName:   env("GATEWAY_STORE_NAME", "Storefront"),
			Description: env("GATEWAY_DESCRIPTION", "Order payment"),
			ThemeColor:  env("GATEWAY_THEME_COLOR", "#3399cc"),
		},

		Session: Cache{
			Capacity: envInt("SESSION_CAPACITY", 10000),
			TTL:      envDuration("SESSION_TTL", 30*time.Minute),
		},

		OrderCache: Cache{
			Capacity: envInt("ORDER_CACHE_CAPACITY", 1000),
			TTL:      envDuration("ORDER_CACHE_TTL", time.Minute),
		},

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			Topic:   env("KAFKA_TOPIC", "checkout-events"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			BatchTimeout: envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Enabled:  envBool("JOURNAL_ENABLED", false),
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "checkout"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
