package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort    int    `json:"server_port"`
	AdminPasscode string `json:"admin_passcode"`

	// Quota settings for unpaid organizations. The usage counter resets once
	// the quota window has elapsed since last_reset.
	FreeDailyLimit int           `json:"free_daily_limit"`
	QuotaWindow    time.Duration `json:"quota_window"`

	// Character ceilings applied to the text field before forwarding.
	FreeTextLimit int `json:"free_text_limit"`
	PaidTextLimit int `json:"paid_text_limit"`

	// Downstream bias-analysis service.
	AnalyzerBaseURL string        `json:"analyzer_base_url"`
	ScanTimeout     time.Duration `json:"scan_timeout"`
	FixTimeout      time.Duration `json:"fix_timeout"`

	GlobalRateLimit int `json:"global_rate_limit"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8080
	}

	adminPasscode := os.Getenv("ADMIN_PASSCODE")
	if adminPasscode == "" {
		return nil, errors.New("ADMIN_PASSCODE must be set")
	}

	return &Config{
		ServerPort:      serverPort,
		AdminPasscode:   adminPasscode,
		FreeDailyLimit:  getEnvIntWithDefault("FREE_DAILY_LIMIT", 20),
		QuotaWindow:     getEnvDurationWithDefault("QUOTA_WINDOW", 24*time.Hour),
		FreeTextLimit:   getEnvIntWithDefault("FREE_TEXT_LIMIT", 20000),
		PaidTextLimit:   getEnvIntWithDefault("PAID_TEXT_LIMIT", 50000),
		AnalyzerBaseURL: getEnvWithDefault("ANALYZER_BASE_URL", "http://localhost:5328/api/biasradar"),
		ScanTimeout:     getEnvDurationWithDefault("ANALYZER_SCAN_TIMEOUT", 30*time.Second),
		FixTimeout:      getEnvDurationWithDefault("ANALYZER_FIX_TIMEOUT", 60*time.Second),
		GlobalRateLimit: getEnvIntWithDefault("GLOBAL_RATE_LIMIT", 10000),
	}, nil
}
