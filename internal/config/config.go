package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application, read by viper from an
// app.env file or environment variables.
type Config struct {
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	PlacesAPIKey      string        `mapstructure:"PLACES_API_KEY"`
	PlacesBaseURL     string        `mapstructure:"PLACES_BASE_URL"`
	RequestTimeout    time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	RequestsPerSecond float64       `mapstructure:"REQUESTS_PER_SECOND"`
	BulkQueryDelay    time.Duration `mapstructure:"BULK_QUERY_DELAY"`
	AllowedOrigins    string        `mapstructure:"ALLOWED_ORIGINS"`
	RateLimitRPS      float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst    int           `mapstructure:"RATE_LIMIT_BURST"`
}

// LoadConfig reads configuration from the given path, with environment
// variables taking precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:3001")
	viper.SetDefault("PLACES_BASE_URL", "https://places.googleapis.com/v1")
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("REQUESTS_PER_SECOND", 5.0)
	viper.SetDefault("BULK_QUERY_DELAY", "200ms")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("RATE_LIMIT_RPS", 0.112)
	viper.SetDefault("RATE_LIMIT_BURST", 100)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
