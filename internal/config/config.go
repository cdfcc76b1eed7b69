package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port         string
	DBPath       string
	JWTSecret    string
	GinMode      string
	ScenarioPath string // YAML scene; empty uses the embedded default

	EventTableSource  string        // URL or file path of event_table.csv
	EventFetchTimeout time.Duration // Upper bound for the remote fetch

	RateLimit  int           // Requests per window and client IP
	RateWindow time.Duration
}

// Load 加载配置
func Load() *Config {
	return &Config{
		Port:              getEnv("PORT", ":8080"),
		DBPath:            getEnv("DB_PATH", ":memory:"),
		JWTSecret:         getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		GinMode:           getEnv("GIN_MODE", "release"),
		ScenarioPath:      os.Getenv("SCENARIO_PATH"),
		EventTableSource:  getEnv("EVENT_TABLE_SOURCE", "./web/event_table.csv"),
		EventFetchTimeout: getDuration("EVENT_FETCH_TIMEOUT", 5*time.Second),
		RateLimit:         getInt("RATE_LIMIT", 120),
		RateWindow:        getDuration("RATE_WINDOW", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
