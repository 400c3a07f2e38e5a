package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, policy constants, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Reservation ReservationConfig
	NATS        NATSConfig
	Push        PushConfig
	Media       MediaConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// ReservationConfig carries every arrival-window and cancellation constant.
// The values drifted across product revisions, so they are configuration
// here rather than constants in code.
type ReservationConfig struct {
	TimeZone        string        `envconfig:"RESERVATION_TIMEZONE" default:"America/Sao_Paulo"`
	OpenHour        int           `envconfig:"RESERVATION_OPEN_HOUR" default:"7"`
	OpenMinute      int           `envconfig:"RESERVATION_OPEN_MINUTE" default:"0"`
	CloseHour       int           `envconfig:"RESERVATION_CLOSE_HOUR" default:"17"`
	CloseMinute     int           `envconfig:"RESERVATION_CLOSE_MINUTE" default:"0"`
	MaxDayOffset    int           `envconfig:"RESERVATION_MAX_DAY_OFFSET" default:"1"`
	MinimumLead     time.Duration `envconfig:"RESERVATION_MINIMUM_LEAD" default:"10m"`
	CancelCutoff    time.Duration `envconfig:"RESERVATION_CANCEL_CUTOFF" default:"10m"`
	NoShowGrace     time.Duration `envconfig:"RESERVATION_NO_SHOW_GRACE" default:"20m"`
	CurrentTabSince time.Duration `envconfig:"RESERVATION_CURRENT_TAB_SINCE" default:"8h"`
}

type NATSConfig struct {
	// Empty means no broker: the change feed is disabled and events are
	// dropped by a no-op publisher.
	URL string `envconfig:"NATS_URL"`
}

type PushConfig struct {
	ExpoURL      string        `envconfig:"PUSH_EXPO_URL" default:"https://exp.host/--/api/v2/push/send"`
	PollInterval time.Duration `envconfig:"PUSH_POLL_INTERVAL" default:"15s"`
	BatchSize    int           `envconfig:"PUSH_BATCH_SIZE" default:"25"`
	MaxAttempts  int           `envconfig:"PUSH_MAX_ATTEMPTS" default:"3"`
}

type MediaConfig struct {
	RootDir string `envconfig:"MEDIA_ROOT_DIR" default:"./media"`
	BaseURL string `envconfig:"MEDIA_BASE_URL" default:"http://localhost:8080/media"`
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
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Reservation: ReservationConfig{
			TimeZone:        "America/Sao_Paulo",
			OpenHour:        7,
			CloseHour:       17,
			MaxDayOffset:    1,
			MinimumLead:     10 * time.Minute,
			CancelCutoff:    10 * time.Minute,
			NoShowGrace:     20 * time.Minute,
			CurrentTabSince: 8 * time.Hour,
		},
	}
}
