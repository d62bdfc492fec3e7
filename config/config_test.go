package config

import "testing"

func TestLoadFromEnvOverrides(t *testing.T) {
	defer func() { AppConfig = Config{LookbackDays: 28, MatchWeeks: 3} }()

	t.Setenv("FORECAST_LOOKBACK_DAYS", "35")
	t.Setenv("FORECAST_MATCH_WEEKS", "4")
	LoadFromEnv()

	if AppConfig.LookbackDays != 35 {
		t.Fatalf("expected lookback 35, got %d", AppConfig.LookbackDays)
	}
	if AppConfig.MatchWeeks != 4 {
		t.Fatalf("expected match weeks 4, got %d", AppConfig.MatchWeeks)
	}
}

func TestLoadFromEnvIgnoresBadValues(t *testing.T) {
	defer func() { AppConfig = Config{LookbackDays: 28, MatchWeeks: 3} }()

	t.Setenv("FORECAST_LOOKBACK_DAYS", "soon")
	t.Setenv("FORECAST_MATCH_WEEKS", "-2")
	LoadFromEnv()

	if AppConfig.LookbackDays != 28 || AppConfig.MatchWeeks != 3 {
		t.Fatalf("expected defaults to survive bad env values, got %+v", AppConfig)
	}
}
