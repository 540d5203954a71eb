package config

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-screener/pkg/common"
	"golang-stock-screener/pkg/config"

	"github.com/go-playground/validator/v10"
)

// Yahoo holds the configuration for the Yahoo Finance chart API.
type Yahoo struct {
	BaseURL             string        `mapstructure:"base_url" validate:"required,url"`
	UserAgent           string        `mapstructure:"user_agent" validate:"required"`
	Timeout             time.Duration `mapstructure:"timeout" validate:"gt=0"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute" validate:"min=0"`
}

// KV holds the credentials for the key-value store holding the latest scan.
// RestAPIURL and RestAPIToken are read from KV_REST_API_URL and KV_REST_API_TOKEN.
type KV struct {
	Backend      string        `mapstructure:"backend" validate:"oneof=rest redis"`
	RestAPIURL   string        `mapstructure:"rest_api_url"`
	RestAPIToken string        `mapstructure:"rest_api_token"`
	Key          string        `mapstructure:"key" validate:"required"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	PoolSize     int           `mapstructure:"pool_size" validate:"min=0"` // redis backend only
}

// Configured reports whether both credentials are present.
func (k KV) Configured() bool {
	return strings.TrimSpace(k.RestAPIURL) != "" && strings.TrimSpace(k.RestAPIToken) != ""
}

// UniverseEntry is one ticker the scanner evaluates.
type UniverseEntry struct {
	Ticker    string  `mapstructure:"ticker" validate:"required"`
	Name      string  `mapstructure:"name"`
	Sector    string  `mapstructure:"sector"`
	MarketCap float64 `mapstructure:"market_cap"`
}

// Scanner holds configuration for the scan pipeline.
type Scanner struct {
	Universe       []UniverseEntry `mapstructure:"universe" validate:"dive"`
	MaxConcurrency int             `mapstructure:"max_concurrency" validate:"min=1"`
	Schedule       string          `mapstructure:"schedule"`
	Timeout        time.Duration   `mapstructure:"timeout" validate:"gt=0"`
	SaveOnSchedule bool            `mapstructure:"save_on_schedule"`
	Seed           int64           `mapstructure:"seed"`
	Weights        map[string]int  `mapstructure:"weights" validate:"dive,min=0,max=100"`
}

// Session holds configuration for session-scoped weight storage.
type Session struct {
	TTL             time.Duration `mapstructure:"ttl" validate:"gt=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" validate:"gt=0"`
}

// Telegram holds configuration for the Telegram notifier. Disabled when BotToken is empty.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
	TopN     int    `mapstructure:"top_n" validate:"min=0"`
}

// Config holds the full configuration for the screener service.
type Config struct {
	App      config.App    `mapstructure:"app"`
	Logger   config.Logger `mapstructure:"logger"`
	API      config.API    `mapstructure:"api"`
	Yahoo    Yahoo         `mapstructure:"yahoo"`
	KV       KV            `mapstructure:"kv"`
	Scanner  Scanner       `mapstructure:"scanner"`
	Session  Session       `mapstructure:"session"`
	Telegram Telegram      `mapstructure:"telegram"`
}

// Defaults returns the default values for every known key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.name":                     "stock-screener",
		"app.env":                      "development",
		"app.version":                  "1.0.0",
		"logger.level":                 "info",
		"logger.encoding":              "json",
		"api.host":                     "",
		"api.port":                     8080,
		"api.allowed_origins":          []string{"*"},
		"api.shutdown_timeout":         "10s",
		"yahoo.base_url":               "https://query1.finance.yahoo.com",
		"yahoo.user_agent":             "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"yahoo.timeout":                "10s",
		"yahoo.max_request_per_minute": 0,
		"kv.backend":                   common.KVBackendREST,
		"kv.rest_api_url":              "",
		"kv.rest_api_token":            "",
		"kv.key":                       common.SnapshotKey,
		"kv.timeout":                   "10s",
		"kv.pool_size":                 10,
		"scanner.universe":             DefaultUniverse(),
		"scanner.max_concurrency":      4,
		"scanner.schedule":             "",
		"scanner.timeout":              "2m",
		"scanner.save_on_schedule":     true,
		"scanner.seed":                 0,
		"session.ttl":                  "24h",
		"session.cleanup_interval":     "1h",
		"telegram.bot_token":           "",
		"telegram.chat_id":             0,
		"telegram.top_n":               5,
	}
}

// DefaultUniverse is the small-cap ticker list scanned when none is configured.
func DefaultUniverse() []map[string]interface{} {
	entries := []struct{ ticker, name, sector string }{
		{"GEVO", "Gevo Inc.", "Energy"},
		{"PLUG", "Plug Power Inc.", "Industrials"},
		{"SNDL", "SNDL Inc.", "Consumer Staples"},
		{"OPEN", "Opendoor Technologies", "Real Estate"},
		{"SOFI", "SoFi Technologies", "Financials"},
		{"BBAI", "BigBear.ai Holdings", "Technology"},
		{"CLSK", "CleanSpark Inc.", "Technology"},
		{"RIOT", "Riot Platforms", "Technology"},
		{"FCEL", "FuelCell Energy", "Industrials"},
		{"OCGN", "Ocugen Inc.", "Healthcare"},
	}
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{"ticker": e.ticker, "name": e.name, "sector": e.sector})
	}
	return out
}

// Validate checks the loaded configuration. Missing KV credentials are not an error here;
// they are reported per request.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Load loads the screener configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, Defaults(), &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
