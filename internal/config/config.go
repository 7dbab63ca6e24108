package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// OpenMeteoBaseURL overrides the upstream forecast endpoint, mainly
	// for tests.
	OpenMeteoBaseURL string

	// OutboundTimeout bounds every upstream call.
	OutboundTimeout time.Duration

	// Server timeouts.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// HealthProbeInterval controls how often upstream reachability is
	// probed.
	HealthProbeInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.OpenMeteoBaseURL = os.Getenv("OPENMETEO_BASE_URL")

	var err error
	if cfg.OutboundTimeout, err = getenvDuration("OUTBOUND_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.ReadTimeout, err = getenvDuration("READ_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getenvDuration("WRITE_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.HealthProbeInterval, err = getenvDuration("HEALTH_PROBE_INTERVAL", 5*time.Minute); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
