package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	GinMode  string `envconfig:"GIN_MODE" default:"debug"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error

	DBDriver    string `envconfig:"DB_DRIVER" default:"postgres"` // postgres|mysql|sqlite
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER" default:"scheduleuser"`
	DBPassword  string `envconfig:"DB_PASSWORD" default:"schedulepassword"`
	DBName      string `envconfig:"DB_NAME" default:"shift_schedule"`
	DBPath      string `envconfig:"DB_PATH" default:"./data/schedule.db"`

	TelegramBotToken    string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramAPIEndpoint string        `envconfig:"TELEGRAM_API_ENDPOINT" default:"https://api.telegram.org/bot%s/%s"`
	NotifyTimeout       time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"10s"`

	RegistrationCode string `envconfig:"SECRET_REGISTRATION_CODE" required:"true"`
	ScheduleTimezone string `envconfig:"SCHEDULE_TIMEZONE" default:"Local"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Location resolves ScheduleTimezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ScheduleTimezone)
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULE_TIMEZONE %q: %w", c.ScheduleTimezone, err)
	}
	return loc, nil
}
