package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Scraper ScraperConfig
	Browser BrowserConfig
	Output  OutputConfig
	Logging LoggingConfig
}

type ScraperConfig struct {
	StartURL      string
	MarkerTimeout time.Duration
	SettleDelay   time.Duration
	MaxRetries    int
}

type BrowserConfig struct {
	Headless       bool
	Timeout        time.Duration
	ViewportWidth  int
	ViewportHeight int
	AcceptLanguage string
	TimezoneID     string
	Locale         string
}

type OutputConfig struct {
	CSVPath  string
	JSONPath string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Scraper: ScraperConfig{
			StartURL:      getEnvOrDefault("SCRAPER_START_URL", "https://www.framesdirect.com/eyeglasses/"),
			MarkerTimeout: getDurationOrDefault("SCRAPER_MARKER_TIMEOUT", 15*time.Second),
			SettleDelay:   getDurationOrDefault("SCRAPER_SETTLE_DELAY", 3*time.Second),
			MaxRetries:    getIntOrDefault("SCRAPER_MAX_RETRIES", 3),
		},
		Browser: BrowserConfig{
			Headless:       getBoolOrDefault("BROWSER_HEADLESS", true),
			Timeout:        getDurationOrDefault("BROWSER_TIMEOUT", 30*time.Second),
			ViewportWidth:  getIntOrDefault("BROWSER_VIEWPORT_WIDTH", 1920),
			ViewportHeight: getIntOrDefault("BROWSER_VIEWPORT_HEIGHT", 1080),
			AcceptLanguage: getEnvOrDefault("BROWSER_ACCEPT_LANGUAGE", "en-US,en;q=0.9"),
			TimezoneID:     getEnvOrDefault("BROWSER_TIMEZONE", "America/New_York"),
			Locale:         getEnvOrDefault("BROWSER_LOCALE", "en-US"),
		},
		Output: OutputConfig{
			CSVPath:  getEnvOrDefault("OUTPUT_CSV_PATH", "pagedata/framesdirect_data.csv"),
			JSONPath: getEnvOrDefault("OUTPUT_JSON_PATH", "pagedata/framesdirect_data.json"),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scraper.StartURL == "" {
		return fmt.Errorf("SCRAPER_START_URL must not be empty")
	}

	if c.Scraper.MarkerTimeout <= 0 {
		return fmt.Errorf("SCRAPER_MARKER_TIMEOUT must be positive")
	}

	if c.Scraper.MaxRetries < 1 {
		return fmt.Errorf("SCRAPER_MAX_RETRIES must be at least 1")
	}

	if c.Output.CSVPath == "" || c.Output.JSONPath == "" {
		return fmt.Errorf("output paths must not be empty")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
