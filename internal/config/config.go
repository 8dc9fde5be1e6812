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

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Cache Cache

	Stripe Stripe
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`

	// Если пусто, адреса success/cancel строятся из входящего запроса
	PublicURL string `validate:"omitempty,url"`
}

type Kafka struct {
	GroupID string   `validate:"required"`
	Brokers []string `validate:"required,min=1,dive,hostname_port"`
	Topic   string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type StripeKeys struct {
	SecretKey      string
	PublishableKey string
}

// Stripe keys are not required at startup: a missing key is reported per
// request for the currency that needs it.
type Stripe struct {
	Default    StripeKeys
	ByCurrency map[string]StripeKeys `validate:"dive,keys,oneof=usd eur rub,endkeys"`

	APIURL     string `validate:"omitempty,url"`
	TaxCountry string `validate:"required,len=2"`
}

var currencies = []string{"usd", "eur", "rub"}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host:      env("HOST", "localhost"),
			Port:      env("PORT", "8080"),
			PublicURL: env("PUBLIC_URL", ""),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID: env("KAFKA_GROUP_ID", "payment-service"),
			Topic:   env("KAFKA_TOPIC", "orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "payments"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", time.Minute),
		},

		Stripe: Stripe{
			Default: StripeKeys{
				SecretKey:      env("STRIPE_SECRET_KEY", ""),
				PublishableKey: env("STRIPE_PUBLISHABLE_KEY", ""),
			},
			ByCurrency: stripeKeysByCurrency(),
			APIURL:     env("STRIPE_API_URL", ""),
			TaxCountry: env("STRIPE_TAX_COUNTRY", "RU"),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// Validate checks only the database settings, for tools that need nothing else.
func (p Postgres) Validate() error {
	return validator.New().Struct(p)
}

// stripeKeysByCurrency reads STRIPE_SECRET_KEY_USD, STRIPE_PUBLISHABLE_KEY_USD, etc.
func stripeKeysByCurrency() map[string]StripeKeys {
	keys := make(map[string]StripeKeys)
	for _, cur := range currencies {
		suffix := strings.ToUpper(cur)
		k := StripeKeys{
			SecretKey:      env("STRIPE_SECRET_KEY_"+suffix, ""),
			PublishableKey: env("STRIPE_PUBLISHABLE_KEY_"+suffix, ""),
		}
		if k.SecretKey != "" || k.PublishableKey != "" {
			keys[cur] = k
		}
	}
	return keys
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

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
