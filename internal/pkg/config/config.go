package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, API URL, keys, DB connection), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Commerce CommerceConfig
	Poller   PollerConfig
	Auth     AuthConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Cookie   CookieConfig
	Log      LogConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CommerceConfig struct {
	BaseURL string        `envconfig:"COMMERCE_BASE_URL" required:"true"`
	AppKey  string        `envconfig:"COMMERCE_APP_KEY" required:"true"`
	Timeout time.Duration `envconfig:"COMMERCE_TIMEOUT" default:"12s"`

	BreakerMaxRequests      uint32        `envconfig:"COMMERCE_BREAKER_MAX_REQUESTS" default:"1"`
	BreakerInterval         time.Duration `envconfig:"COMMERCE_BREAKER_INTERVAL" default:"60s"`
	BreakerOpenTimeout      time.Duration `envconfig:"COMMERCE_BREAKER_OPEN_TIMEOUT" default:"30s"`
	BreakerFailureThreshold uint32        `envconfig:"COMMERCE_BREAKER_FAILURE_THRESHOLD" default:"5"`
}

type PollerConfig struct {
	// Number of failed status queries tolerated before the outcome is recorded as failure.
	// 0 keeps fail-fast behavior.
	QueryFailureTolerance int `envconfig:"POLL_QUERY_FAILURE_TOLERANCE" default:"0"`
	// Attempt index from which a still-pending payment gets a provisional record
	ProvisionalAfterAttempt int `envconfig:"POLL_PROVISIONAL_AFTER_ATTEMPT" default:"10"`
}

type AuthConfig struct {
	SignInPath string `envconfig:"SIGNIN_PATH" default:"/signin"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	Addr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string        `envconfig:"REDIS_PASSWORD" default:""`
	DB        int           `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string        `envconfig:"REDIS_KEY_PREFIX" default:"storefront"`
	StateTTL  time.Duration `envconfig:"STATE_TTL" default:"720h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Commerce: CommerceConfig{
			BaseURL:                 "http://localhost:18080/api",
			AppKey:                  "test-app-key",
			Timeout:                 2 * time.Second,
			BreakerMaxRequests:      1,
			BreakerInterval:         time.Minute,
			BreakerOpenTimeout:      time.Second,
			BreakerFailureThreshold: 5,
		},
		Poller: PollerConfig{
			QueryFailureTolerance:   0,
			ProvisionalAfterAttempt: 10,
		},
		Auth: AuthConfig{
			SignInPath: "/signin",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			Addr:      "localhost:16379",
			KeyPrefix: "storefront-test",
			StateTTL:  time.Hour,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
	}
}
