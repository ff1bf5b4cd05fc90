package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the school proximity service.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port for the HTTP API server.
// - Geocoder: Settings for the optional address-resolution provider.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env      string         `validate:"required"`
	Port     int            `validate:"gt=0"`
	Geocoder GeocoderConfig // Geocoder holds the address-resolution provider configuration.
	Database PostgresConfig // Database holds the postgres database configuration.
}

// GeocoderConfig holds the provider selection and credentials for the
// address-resolution endpoint.
type GeocoderConfig struct {
	Type   string `validate:"required"` // Type specifies which geocoding provider to use (google, nominatim).
	APIKey string // The API key for accessing external services (required for Google).
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `validate:"required"` // Host is the database server address.
	Port     string `validate:"required"` // Port is the database server port.
	User     string `validate:"required"` // User is the database user.
	Password string // Password is the database user's password.
	Name     string `validate:"required"` // Name is the name of the database.
	MaxConns int32  `validate:"gt=0"`     // MaxConns bounds the connection pool.
}

// MustLoad reads the configuration from the process environment (with an
// optional .env file) and returns a Config struct. Missing or invalid required
// values cause a panic: the service must not start on an unverified setup.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.AutomaticEnv()
	vpr.SetDefault("COMPASS_ENV", "production")
	vpr.SetDefault("COMPASS_PORT", 8080)
	vpr.SetDefault("COMPASS_GEOCODER_TYPE", "nominatim")
	vpr.SetDefault("DB_PORT", "5432")
	vpr.SetDefault("DB_MAX_CONNS", 10)

	cfg := &Config{
		Env:  vpr.GetString("COMPASS_ENV"),
		Port: vpr.GetInt("COMPASS_PORT"),
		Geocoder: GeocoderConfig{
			Type:   vpr.GetString("COMPASS_GEOCODER_TYPE"),
			APIKey: vpr.GetString("COMPASS_GEOCODER_KEY"),
		},
		Database: PostgresConfig{
			Host:     vpr.GetString("DB_HOST"),
			Port:     vpr.GetString("DB_PORT"),
			User:     vpr.GetString("DB_USERNAME"),
			Password: vpr.GetString("DB_PASSWORD"),
			Name:     vpr.GetString("DB_NAME"),
			MaxConns: vpr.GetInt32("DB_MAX_CONNS"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		panic("invalid configuration: " + err.Error())
	}

	return cfg
}
