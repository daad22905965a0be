package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisPlanDB   int    `mapstructure:"REDIS_PLAN_DB"`

	// Inventory provider session credentials.
	ProviderClientID     string `mapstructure:"PROVIDER_CLIENT_ID"`
	ProviderClientSecret string `mapstructure:"PROVIDER_CLIENT_SECRET"`

	// Flight leg defaults and quote currency.
	OriginCode      string `mapstructure:"ORIGIN_CODE"`
	DestinationCode string `mapstructure:"DESTINATION_CODE"`
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and
	// "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_PLAN_DB", 0)
	viper.SetDefault("PROVIDER_CLIENT_ID", "roamify-dev")
	viper.SetDefault("PROVIDER_CLIENT_SECRET", "roamify-dev-secret")
	viper.SetDefault("ORIGIN_CODE", "JFK")
	viper.SetDefault("DESTINATION_CODE", "CDG")
	viper.SetDefault("DEFAULT_CURRENCY", "EUR")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
