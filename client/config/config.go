package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	BaseURL            string
	LogFile            string
	LogLevel           string
	RequestTimeout     time.Duration
	InsecureSkipVerify bool
}

// Load reads the client settings from the environment. Call godotenv.Load
// first to pick up a .env file.
func Load() Config {
	timeout := time.Duration(0)
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			timeout = d
		}
	}

	return Config{
		BaseURL:            strings.TrimRight(getEnv("STUDYBUDDY_URL", "http://localhost:5000"), "/"),
		LogFile:            getEnv("LOG_FILE", "studybuddy.log"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RequestTimeout:     timeout,
		InsecureSkipVerify: os.Getenv("INSECURE_SKIP_VERIFY") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
