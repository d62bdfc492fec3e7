package config

import (
	"os"
	"strconv"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	// LookbackDays is how far back the forecast fetches sales history.
	// 28 days guarantees at least four occurrences of every weekday.
	LookbackDays int
	// MatchWeeks is how many same-weekday observations feed the average.
	MatchWeeks int
}

// AppConfig holds the application-wide configuration
var AppConfig = Config{
	LookbackDays: 28,
	MatchWeeks:   3,
}

// LoadFromEnv overrides the defaults from environment variables.
func LoadFromEnv() {
	if v := os.Getenv("FORECAST_LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			AppConfig.LookbackDays = n
		}
	}
	if v := os.Getenv("FORECAST_MATCH_WEEKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			AppConfig.MatchWeeks = n
		}
	}
}
