package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"arcade_queue/internal/geofence"
)

// Default venue: Ambarrukmo Plaza, Yogyakarta.
const (
	DefaultVenueLat  = -7.782357
	DefaultVenueLon  = 110.401167
	DefaultRadiusKm  = 0.5
	DefaultHTTPAddr  = ":8080"
	DefaultHealthJob = "0 */5 * * * *"
)

type Database struct {
	Driver   string // postgres or sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	Path     string // sqlite file
}

// DSN builds the postgres connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type Redis struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

type Config struct {
	HTTPAddr    string
	LogLevel    string
	CORSOrigins []string
	DB          Database
	Redis       Redis
	Geofence    geofence.Gate

	// Cron specs with a seconds field; empty disables the job.
	ResetCron  string
	HealthCron string
}

// LoadEnv reads .env into the process environment unless ENV_CHEK is set,
// which deployments use to signal the environment is already populated.
func LoadEnv(paths ...string) {
	if os.Getenv("ENV_CHEK") != "" {
		return
	}
	if err := godotenv.Load(paths...); err != nil {
		log.Warnf("no .env loaded: %v", err)
		return
	}
	log.Info(".env file loaded.")
}

// Load builds a Config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:    getenv("HTTP_ADDR", DefaultHTTPAddr),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		CORSOrigins: splitList(getenv("CORS_ORIGINS", "*")),
		DB: Database{
			Driver:   strings.ToLower(getenv("DB_DRIVER", "postgres")),
			Host:     getenv("DB_HOST", "localhost"),
			Port:     getenv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
			Path:     getenv("DB_PATH", "arcade_queue.db"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			Channel:  getenv("REDIS_CHANNEL", "arcade_queue:events"),
		},
		ResetCron:  os.Getenv("QUEUE_RESET_CRON"),
		HealthCron: getenv("HEALTH_CRON", DefaultHealthJob),
	}

	var err error
	if cfg.Redis.DB, err = intEnv("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.Geofence.Venue.Lat, err = floatEnv("VENUE_LAT", DefaultVenueLat); err != nil {
		return nil, err
	}
	if cfg.Geofence.Venue.Lon, err = floatEnv("VENUE_LON", DefaultVenueLon); err != nil {
		return nil, err
	}
	if cfg.Geofence.RadiusKm, err = floatEnv("GEOFENCE_RADIUS_KM", DefaultRadiusKm); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "postgres":
		if c.DB.Name == "" {
			return fmt.Errorf("DB_NAME is required for the postgres driver")
		}
	case "sqlite":
		if c.DB.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if err := c.Geofence.Venue.Validate(); err != nil {
		return fmt.Errorf("venue: %w", err)
	}
	if c.Geofence.RadiusKm < 0 {
		return fmt.Errorf("GEOFENCE_RADIUS_KM must not be negative")
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
