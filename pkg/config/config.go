package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "RAGAVIBES"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
	Checkout     CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"RAGAVIBES_APP_ENV" required:"true"`
	Port         string `envconfig:"RAGAVIBES_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"RAGAVIBES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"RAGAVIBES_LOG_WARN_STACK" default:"false"`

	// CORSExtraOrigins extends the built-in allowed origin list, comma separated.
	CORSExtraOrigins []string `envconfig:"RAGAVIBES_CORS_EXTRA_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"RAGAVIBES_DB_DSN"`
	Driver string `envconfig:"RAGAVIBES_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"RAGAVIBES_DB_HOST"`
	LegacyPort     int    `envconfig:"RAGAVIBES_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"RAGAVIBES_DB_USER"`
	LegacyPassword string `envconfig:"RAGAVIBES_DB_PASSWORD"`
	LegacyName     string `envconfig:"RAGAVIBES_DB_NAME"`
	LegacySSLMode  string `envconfig:"RAGAVIBES_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"RAGAVIBES_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"RAGAVIBES_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"RAGAVIBES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"RAGAVIBES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN falls back to the discrete host/user fields when no DSN is provided.
func (d *DBConfig) ensureDSN() error {
	if strings.TrimSpace(d.DSN) != "" {
		return nil
	}
	if d.LegacyHost == "" || d.LegacyUser == "" || d.LegacyName == "" {
		return fmt.Errorf("database config requires either RAGAVIBES_DB_DSN or host/user/name")
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.LegacyUser, d.LegacyPassword),
		Host:   fmt.Sprintf("%s:%d", d.LegacyHost, d.LegacyPort),
		Path:   d.LegacyName,
	}
	q := u.Query()
	q.Set("sslmode", d.LegacySSLMode)
	u.RawQuery = q.Encode()
	d.DSN = u.String()
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"RAGAVIBES_REDIS_URL"`
	Address      string        `envconfig:"RAGAVIBES_REDIS_ADDR"`
	Password     string        `envconfig:"RAGAVIBES_REDIS_PASSWORD"`
	DB           int           `envconfig:"RAGAVIBES_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"RAGAVIBES_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"RAGAVIBES_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"RAGAVIBES_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"RAGAVIBES_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"RAGAVIBES_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"RAGAVIBES_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"RAGAVIBES_JWT_ISSUER" default:"ragavibes"`
	ExpirationMinutes      int    `envconfig:"RAGAVIBES_JWT_EXPIRATION_MINUTES" default:"30"`
	RefreshTokenTTLMinutes int    `envconfig:"RAGAVIBES_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"RAGAVIBES_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"RAGAVIBES_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"RAGAVIBES_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"RAGAVIBES_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"RAGAVIBES_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"RAGAVIBES_AUTO_MIGRATE" default:"false"`
}

type CheckoutConfig struct {
	// MaxLineItems bounds the snapshot copied onto an order.
	MaxLineItems int `envconfig:"RAGAVIBES_CHECKOUT_MAX_LINE_ITEMS" default:"100"`
}
