package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultTimezone = "America/Chicago"

// Load reads and validates the application configuration. It tries the given
// path first and falls back to config.yml in the working directory. Feed
// credentials can be overridden from the environment (TRANSIT_FEED_USERNAME,
// TRANSIT_FEED_PASSWORD, TRANSIT_FEED_TOKEN); a .env file is honoured when
// present.
func Load(path string) (*AppConfig, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	paths := []string{path, "config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		if p == "" {
			continue
		}
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("TRANSIT_FEED_USERNAME"); v != "" {
		cfg.Feed.Username = v
	}
	if v := os.Getenv("TRANSIT_FEED_PASSWORD"); v != "" {
		cfg.Feed.Password = v
	}
	if v := os.Getenv("TRANSIT_FEED_TOKEN"); v != "" {
		cfg.Feed.APIToken = v
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	if cfg.Timezone == "" {
		cfg.Timezone = defaultTimezone
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return &cfg, nil
}
