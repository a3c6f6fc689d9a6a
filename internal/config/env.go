package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvLogLevel   = "SITECONTENT_LOG_LEVEL"
	EnvContentDir = "SITECONTENT_CONTENT_DIR"
	EnvOutputDir  = "SITECONTENT_OUTPUT_DIR"
	EnvTimezone   = "SITECONTENT_TIMEZONE"
)

// loadEnvFiles loads .env then .env.local. godotenv never overrides
// variables already present in the process environment.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = LogLevel(v)
	}
	if v := os.Getenv(EnvContentDir); v != "" {
		cfg.Content.Directory = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.Output.Directory = v
	}
	if v := os.Getenv(EnvTimezone); v != "" {
		cfg.Build.Timezone = v
	}
}
