package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"arcade_queue/internal/config"
	"arcade_queue/internal/geofence"
)

const (
	defaultServer        = "http://localhost:8080"
	defaultPollSeconds   = 5
	defaultHealthSeconds = 447
)

// settings is the CLI's TOML configuration. Flags override it.
type settings struct {
	Server        string               `toml:"server"`
	PollSeconds   int                  `toml:"poll_seconds"`
	HealthSeconds int                  `toml:"health_seconds"`
	Location      *geofence.Coordinate `toml:"location"`
	Venue         geofence.Coordinate  `toml:"venue"`
	RadiusKm      float64              `toml:"radius_km"`
}

func defaultSettings() settings {
	return settings{
		Server:        defaultServer,
		PollSeconds:   defaultPollSeconds,
		HealthSeconds: defaultHealthSeconds,
		Venue:         geofence.Coordinate{Lat: config.DefaultVenueLat, Lon: config.DefaultVenueLon},
		RadiusKm:      config.DefaultRadiusKm,
	}
}

func defaultSettingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "queuectl", "config.toml"), nil
}

// loadSettings reads path, or the default location when path is empty. A
// missing default file is not an error; a missing explicit one is.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		var err error
		if path, err = defaultSettingsPath(); err != nil {
			return s, err
		}
	}

	file, err := os.Open(path)
	switch {
	case err == nil:
		defer file.Close()
		if err := toml.NewDecoder(file).Decode(&s); err != nil {
			return s, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return s, fmt.Errorf("open config: %w", err)
	}

	return s, s.validate()
}

func (s settings) validate() error {
	if strings.TrimSpace(s.Server) == "" {
		return errors.New("config: server must not be empty")
	}
	if s.PollSeconds <= 0 {
		return fmt.Errorf("config: poll_seconds must be positive, got %d", s.PollSeconds)
	}
	if s.HealthSeconds <= 0 {
		return fmt.Errorf("config: health_seconds must be positive, got %d", s.HealthSeconds)
	}
	if err := s.Venue.Validate(); err != nil {
		return fmt.Errorf("config: venue: %w", err)
	}
	if s.RadiusKm < 0 {
		return fmt.Errorf("config: radius_km must not be negative, got %v", s.RadiusKm)
	}
	if s.Location != nil {
		if err := s.Location.Validate(); err != nil {
			return fmt.Errorf("config: location: %w", err)
		}
	}
	return nil
}

func (s settings) gate() geofence.Gate {
	return geofence.Gate{Venue: s.Venue, RadiusKm: s.RadiusKm}
}

func (s settings) pollInterval() time.Duration {
	return time.Duration(s.PollSeconds) * time.Second
}

func (s settings) healthInterval() time.Duration {
	return time.Duration(s.HealthSeconds) * time.Second
}
