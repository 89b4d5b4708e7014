package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	FetchModeRequest = "request"
	FetchModeDriver  = "driver"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	ListingURL string `envconfig:"LISTING_URL" default:"https://rozetka.com.ua/mobile-phones/c80003/preset=smartfon;view=tile"`
	OutputPath string `envconfig:"OUTPUT_PATH" default:"output.csv"`

	// FetchMode selects how detail pages are retrieved for the whole run.
	FetchMode string `envconfig:"FETCH_MODE" default:"request"`

	LoadMoreDelay time.Duration `envconfig:"LOAD_MORE_DELAY" default:"4s"`
	RequestDelay  time.Duration `envconfig:"REQUEST_DELAY" default:"500ms"`
	TabDelay      time.Duration `envconfig:"TAB_DELAY" default:"1s"`
	NavTimeout    time.Duration `envconfig:"NAV_TIMEOUT" default:"90s"`

	ChromeBin string `envconfig:"CHROME_BIN"`
	UserAgent string `envconfig:"USER_AGENT" default:"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"`

	// PostgresDSN enables the Postgres sink when non-empty.
	PostgresDSN string `envconfig:"POSTGRES_DSN"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the .env file (if any) and returns a populated Config struct.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			log.Printf("[config] .env file found but could not be loaded: %v", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.FetchMode != FetchModeRequest && c.FetchMode != FetchModeDriver {
		return fmt.Errorf("config: FETCH_MODE must be %q or %q, got %q",
			FetchModeRequest, FetchModeDriver, c.FetchMode)
	}
	if c.ListingURL == "" {
		return fmt.Errorf("config: LISTING_URL must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("config: OUTPUT_PATH must not be empty")
	}
	if c.LoadMoreDelay < 0 || c.RequestDelay < 0 || c.TabDelay < 0 {
		return fmt.Errorf("config: delays must not be negative")
	}
	return nil
}
