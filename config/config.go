package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of the
// system: the HTTP server, the outbound market-data provider, and the
// defaults applied to historical fetches.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	PROVIDER_BASE_URL=https://query1.finance.yahoo.com
//	PROVIDER_TIMEOUT_SECONDS=30
//	HISTORY_WINDOW_DAYS=180
//	HISTORY_INTERVAL=1d
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Outbound market-data provider settings
	History  HistoryConfig  // Defaults for historical fetches
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ProviderConfig defines how to reach the external market-data provider.
//
// Fields:
//   - BaseURL: provider API host (overridable for testing against a stub).
//   - TimeoutSeconds: per-request timeout of the outbound HTTP client.
type ProviderConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// HistoryConfig defines defaults applied when a request omits them.
//
// Fields:
//   - WindowDays: history window used when the start date is absent.
//   - Interval: provider interval code used when none is supplied.
type HistoryConfig struct {
	WindowDays int
	Interval   string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the
//     app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("PROVIDER_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 30)

	viper.SetDefault("HISTORY_WINDOW_DAYS", 180)
	viper.SetDefault("HISTORY_INTERVAL", "1d")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			BaseURL:        viper.GetString("PROVIDER_BASE_URL"),
			TimeoutSeconds: viper.GetInt("PROVIDER_TIMEOUT_SECONDS"),
		},
		History: HistoryConfig{
			WindowDays: viper.GetInt("HISTORY_WINDOW_DAYS"),
			Interval:   viper.GetString("HISTORY_INTERVAL"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "PROVIDER_BASE_URL")
	}
	if AppConfig.Provider.TimeoutSeconds <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT_SECONDS")
	}
	if AppConfig.History.WindowDays <= 0 {
		missing = append(missing, "HISTORY_WINDOW_DAYS")
	}
	if AppConfig.History.Interval == "" {
		missing = append(missing, "HISTORY_INTERVAL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
