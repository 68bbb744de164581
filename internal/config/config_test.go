package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, DefaultVenueLat, cfg.Geofence.Venue.Lat)
	assert.Equal(t, DefaultVenueLon, cfg.Geofence.Venue.Lon)
	assert.Equal(t, DefaultRadiusKm, cfg.Geofence.RadiusKm)
	assert.Equal(t, DefaultHealthJob, cfg.HealthCron)
	assert.Empty(t, cfg.ResetCron)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_NAME", "arcade")
	t.Setenv("DB_USER", "queue")
	t.Setenv("VENUE_LAT", "-6.265856")
	t.Setenv("VENUE_LON", "106.944008")
	t.Setenv("GEOFENCE_RADIUS_KM", "2.5")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://queue.example")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, -6.265856, cfg.Geofence.Venue.Lat)
	assert.Equal(t, 2.5, cfg.Geofence.RadiusKm)
	assert.Equal(t, []string{"http://localhost:3000", "https://queue.example"}, cfg.CORSOrigins)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Contains(t, cfg.DB.DSN(), "dbname=arcade")
	assert.Contains(t, cfg.DB.DSN(), "user=queue")
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "oracle")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("postgres without name", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "postgres")
		t.Setenv("DB_NAME", "")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("bad latitude", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("VENUE_LAT", "north")
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("latitude out of range", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("VENUE_LAT", "120")
		_, err := Load()
		assert.Error(t, err)
	})
}
