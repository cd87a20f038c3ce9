package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Reference data
	CountriesPath  string
	PublishersPath string

	// RSS settings
	FeedsConfigPath string
	MaxNewsLimit    int
	NewsMaxAge      time.Duration

	// News API settings (optional HTTP source)
	NewsAPIKey     string
	NewsAPIBaseURL string
	NewsAPIQuery   string
	DailyQuota     int

	// Output settings
	OutputPath string

	// App settings
	Debug          bool
	RunInterval    time.Duration // 0 = single run
	RequestTimeout time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration

	// Cache settings
	CacheFilePath string
	CacheTTLHours int

	// Monitoring
	MonitoringEnabled bool
	MonitoringPort    int
}

func Load() (*Config, error) {
	cfg := &Config{
		CountriesPath:   "data/countries.yaml",
		PublishersPath:  "data/publishers.yaml",
		FeedsConfigPath: "configs/feeds.yaml",
		MaxNewsLimit:    100,
		NewsMaxAge:      24 * time.Hour,
		NewsAPIBaseURL:  "https://newsdata.io/api/1/latest",
		NewsAPIQuery:    "world",
		DailyQuota:      180,
		OutputPath:      "output/perspectives.json",
		RequestTimeout:  30 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      5 * time.Second,
		CacheTTLHours:   48,
		MonitoringPort:  8080,
	}

	cfg.CountriesPath = getEnvOrDefault("COUNTRIES_PATH", cfg.CountriesPath)
	cfg.PublishersPath = getEnvOrDefault("PUBLISHERS_PATH", cfg.PublishersPath)
	cfg.FeedsConfigPath = getEnvOrDefault("FEEDS_CONFIG_PATH", cfg.FeedsConfigPath)
	cfg.OutputPath = getEnvOrDefault("OUTPUT_PATH", cfg.OutputPath)

	cfg.NewsAPIKey = os.Getenv("NEWSDATA_API_KEY")
	cfg.NewsAPIBaseURL = getEnvOrDefault("NEWSDATA_BASE_URL", cfg.NewsAPIBaseURL)
	cfg.NewsAPIQuery = getEnvOrDefault("NEWSDATA_QUERY", cfg.NewsAPIQuery)
	cfg.DailyQuota = getEnvIntOrDefault("NEWSDATA_DAILY_QUOTA", cfg.DailyQuota)

	cfg.CacheFilePath = getEnvOrDefault("CACHE_FILE_PATH", "seen_articles.json")
	cfg.CacheTTLHours = getEnvIntOrDefault("CACHE_TTL_HOURS", cfg.CacheTTLHours)

	if debug := os.Getenv("DEBUG"); debug == "true" {
		cfg.Debug = true
	}

	if limit := os.Getenv("MAX_NEWS_LIMIT"); limit != "" {
		if val, err := strconv.Atoi(limit); err == nil && val > 0 {
			cfg.MaxNewsLimit = val
		}
	}

	if v := os.Getenv("NEWS_MAX_AGE_HOURS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.NewsMaxAge = time.Duration(val) * time.Hour
		}
	}

	if v := os.Getenv("RUN_INTERVAL_MINUTES"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RunInterval = time.Duration(val) * time.Minute
		}
	}

	if v := os.Getenv("RETRY_ATTEMPTS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			cfg.RetryAttempts = val
		}
	}

	if os.Getenv("MONITORING_ENABLED") == "true" {
		cfg.MonitoringEnabled = true
	}
	cfg.MonitoringPort = getEnvIntOrDefault("MONITORING_PORT", cfg.MonitoringPort)

	return cfg, cfg.Validate()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func (c *Config) Validate() error {
	if c.CountriesPath == "" {
		return fmt.Errorf("COUNTRIES_PATH must not be empty")
	}
	if c.PublishersPath == "" {
		return fmt.Errorf("PUBLISHERS_PATH must not be empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH must not be empty")
	}
	if c.MonitoringPort <= 0 || c.MonitoringPort > 65535 {
		return fmt.Errorf("MONITORING_PORT must be a valid port, got %d", c.MonitoringPort)
	}
	return nil
}
