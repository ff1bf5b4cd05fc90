package config_test

import (
	"testing"

	"github.com/UnknownOlympus/compass/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoad(t *testing.T) {
	t.Setenv("COMPASS_ENV", "local")
	t.Setenv("COMPASS_PORT", "9090")
	t.Setenv("COMPASS_GEOCODER_TYPE", "google")
	t.Setenv("COMPASS_GEOCODER_KEY", "testAPIKey")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")
	t.Setenv("DB_MAX_CONNS", "4")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "google", cfg.Geocoder.Type)
	assert.Equal(t, "testAPIKey", cfg.Geocoder.APIKey)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
	assert.Equal(t, int32(4), cfg.Database.MaxConns)
}

func TestMustLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "nominatim", cfg.Geocoder.Type)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, int32(10), cfg.Database.MaxConns)
}

func TestMustLoad_MissingDatabase(t *testing.T) {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_USERNAME", "")
	t.Setenv("DB_NAME", "")

	assert.Panics(t, func() {
		config.MustLoad()
	})
}
