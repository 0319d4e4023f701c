package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Booking BookingConfig
	Notify  NotifyConfig
	Metrics MetricsConfig
}

type AppConfig struct {
	Port     string
	Env      string
	Timezone string
	LogLevel string
	// SeedAppointmentTypes inserts the default catalogue when the registry is empty
	SeedAppointmentTypes bool
}

type DBConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxIdleConns int
	MaxOpenConns int
	AutoMigrate  bool
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

// Lock drivers for per-slot reservation serialization
const (
	LockDriverMemory = "memory"
	LockDriverRedis  = "redis"
)

type BookingConfig struct {
	LockDriver          string
	LockTTL             time.Duration
	ReserveTimeout      time.Duration
	AvailabilityMaxDays int
}

// Notification drivers
const (
	NotifyDriverLog   = "log"
	NotifyDriverRedis = "redis"
)

type NotifyConfig struct {
	Driver  string
	Channel string
	Buffer  int
	Workers int
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

// Location resolves the configured local timezone. All slot dates and times are
// interpreted in this single zone.
func (c AppConfig) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// DSN returns the gorm/pgx connection string
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode,
	)
}

// MigrateURL returns the golang-migrate pgx/v5 database URL
func (c DBConfig) MigrateURL() string {
	return fmt.Sprintf(
		"pgx5://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads an optional env file, then lets the process environment
// override it.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{
		App: AppConfig{
			Port:                 v.GetString("APP_PORT"),
			Env:                  v.GetString("APP_ENV"),
			Timezone:             v.GetString("APP_TIMEZONE"),
			LogLevel:             v.GetString("LOG_LEVEL"),
			SeedAppointmentTypes: v.GetBool("SEED_APPOINTMENT_TYPES"),
		},
		DB: DBConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetString("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSLMODE"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			AutoMigrate:  v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       v.GetString("JWT_SECRET"),
			AccessExpiry: v.GetDuration("JWT_ACCESS_EXPIRY"),
		},
		Booking: BookingConfig{
			LockDriver:          v.GetString("BOOKING_LOCK_DRIVER"),
			LockTTL:             v.GetDuration("BOOKING_LOCK_TTL"),
			ReserveTimeout:      v.GetDuration("BOOKING_RESERVE_TIMEOUT"),
			AvailabilityMaxDays: v.GetInt("BOOKING_AVAILABILITY_MAX_DAYS"),
		},
		Notify: NotifyConfig{
			Driver:  v.GetString("NOTIFY_DRIVER"),
			Channel: v.GetString("NOTIFY_CHANNEL"),
			Buffer:  v.GetInt("NOTIFY_BUFFER"),
			Workers: v.GetInt("NOTIFY_WORKERS"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
			Path:    v.GetString("METRICS_PATH"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_TIMEZONE", "Local")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SEED_APPOINTMENT_TYPES", true)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_MAX_OPEN_CONNS", 100)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("JWT_ACCESS_EXPIRY", 15*time.Minute)

	v.SetDefault("BOOKING_LOCK_DRIVER", LockDriverMemory)
	v.SetDefault("BOOKING_LOCK_TTL", 10*time.Second)
	v.SetDefault("BOOKING_RESERVE_TIMEOUT", 5*time.Second)
	v.SetDefault("BOOKING_AVAILABILITY_MAX_DAYS", 92)

	v.SetDefault("NOTIFY_DRIVER", NotifyDriverLog)
	v.SetDefault("NOTIFY_CHANNEL", "appointment-events")
	v.SetDefault("NOTIFY_BUFFER", 100)
	v.SetDefault("NOTIFY_WORKERS", 1)

	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("METRICS_PATH", "/metrics")
}

func (c *Config) validate() error {
	switch c.Booking.LockDriver {
	case LockDriverMemory, LockDriverRedis:
	default:
		return fmt.Errorf("unsupported BOOKING_LOCK_DRIVER %q", c.Booking.LockDriver)
	}
	switch c.Notify.Driver {
	case NotifyDriverLog, NotifyDriverRedis:
	default:
		return fmt.Errorf("unsupported NOTIFY_DRIVER %q", c.Notify.Driver)
	}
	if c.Booking.ReserveTimeout <= 0 {
		return errors.New("BOOKING_RESERVE_TIMEOUT must be positive")
	}
	if c.Notify.Buffer < 1 || c.Notify.Workers < 1 {
		return errors.New("NOTIFY_BUFFER and NOTIFY_WORKERS must be at least 1")
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}
