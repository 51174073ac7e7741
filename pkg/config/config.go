package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the envconfig prefix shared by every service binary.
const EnvPrefix = "SUNSTATE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	Redis     RedisConfig
	Bookings  BookingsConfig
	Quotes    QuotesConfig
	RateLimit RateLimitConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SUNSTATE_APP_ENV" required:"true"`
	Port         string `envconfig:"SUNSTATE_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SUNSTATE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SUNSTATE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"SUNSTATE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SUNSTATE_REDIS_ADDR"`
	Password     string        `envconfig:"SUNSTATE_REDIS_PASSWORD"`
	DB           int           `envconfig:"SUNSTATE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SUNSTATE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SUNSTATE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SUNSTATE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SUNSTATE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SUNSTATE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// BookingsConfig points at the external bookings API that receives
// submitted quotes and contact-form leads.
type BookingsConfig struct {
	BaseURL string        `envconfig:"SUNSTATE_BOOKINGS_BASE_URL" required:"true"`
	APIKey  string        `envconfig:"SUNSTATE_BOOKINGS_API_KEY"`
	Timeout time.Duration `envconfig:"SUNSTATE_BOOKINGS_TIMEOUT" default:"10s"`
}

type QuotesConfig struct {
	DraftTTL      time.Duration `envconfig:"SUNSTATE_QUOTE_DRAFT_TTL" default:"168h"`
	SubmitLockTTL time.Duration `envconfig:"SUNSTATE_QUOTE_SUBMIT_LOCK_TTL" default:"30s"`
}

type RateLimitConfig struct {
	ContactWindow  time.Duration `envconfig:"SUNSTATE_RATE_LIMIT_CONTACT_WINDOW" default:"1m"`
	ContactIPLimit int           `envconfig:"SUNSTATE_RATE_LIMIT_CONTACT_IP_LIMIT" default:"5"`
}
