package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/WeakCookie/fit-path-hackathon/internal/seed"
	"github.com/WeakCookie/fit-path-hackathon/internal/training"

	"github.com/BurntSushi/toml"
)

const (
	SuggestionCacheRedis  = "redis"
	SuggestionCacheMemory = "memory"
	SuggestionCacheNone   = "none"
)

type Config struct {
	Environment string
	Host        string
	Port        int
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// redis backs the rate limiter and the suggestion cache
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`
	// http
	CorsAllowedOrigins        []string `toml:"cors_allowed_origins"`
	SimulationRateLimitPerMin int      `toml:"simulation_rate_limit_per_min"`
	// ai server
	UseAIBackend       bool     `toml:"use_ai_backend"`
	AIServerBaseURL    string   `toml:"ai_server_base_url"`
	AIRequestTimeout   Duration `toml:"ai_request_timeout"`
	AIUserID           string   `toml:"ai_user_id"`
	SuggestionCache    string   `toml:"suggestion_cache"` // redis | memory | none
	SuggestionCacheTTL Duration `toml:"suggestion_cache_ttl"`
	MemoryCacheSizeMB  int      `toml:"memory_cache_size_mb"`
	// simulation
	VariabilityFactor float64  `toml:"variability_factor"`
	SimpleMode        bool     `toml:"simple_mode"`
	WeightPreset      string   `toml:"weight_preset"`
	PaperIDs          []string `toml:"paper_ids"`
	StartDate         string   `toml:"start_date"`
}

// Duration is a time.Duration read from a TOML string, e.g. "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration [%s]: %w", text, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file and returns the section of the given env,
// with unset keys falling back to Default.
func Load(env, path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var t Toml
	if _, err := toml.Decode(string(content), &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}
	return cfg, nil
}

// Default is a complete development config with everything kept in memory.
func Default() *Config {
	return &Config{
		Environment:               "development",
		Host:                      "localhost",
		Port:                      9000,
		LogLevel:                  "debug",
		PrometheusMetricsHost:     "localhost",
		PrometheusMetricsPort:     "9001",
		RedisHost:                 "localhost",
		RedisPort:                 "6379",
		CorsAllowedOrigins:        []string{"http://localhost:5173", "http://localhost:8080"},
		SimulationRateLimitPerMin: 60,
		AIServerBaseURL:           "http://localhost:8000",
		AIRequestTimeout:          Duration{30 * time.Second},
		AIUserID:                  "user-001",
		SuggestionCache:           SuggestionCacheMemory,
		SuggestionCacheTTL:        Duration{10 * time.Minute},
		MemoryCacheSizeMB:         10,
		VariabilityFactor:         training.DefaultVariabilityFactor,
		WeightPreset:              training.PresetBalanced,
		StartDate:                 seed.StartDate,
	}
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Host == "" {
		c.Host = def.Host
	}
	if c.Port == 0 {
		c.Port = def.Port
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = def.PrometheusMetricsHost
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = def.PrometheusMetricsPort
	}
	if c.RedisHost == "" {
		c.RedisHost = def.RedisHost
	}
	if c.RedisPort == "" {
		c.RedisPort = def.RedisPort
	}
	if c.SimulationRateLimitPerMin <= 0 {
		c.SimulationRateLimitPerMin = def.SimulationRateLimitPerMin
	}
	if c.AIRequestTimeout.Duration <= 0 {
		c.AIRequestTimeout = def.AIRequestTimeout
	}
	if c.AIUserID == "" {
		c.AIUserID = def.AIUserID
	}
	if c.SuggestionCache == "" {
		c.SuggestionCache = def.SuggestionCache
	}
	if c.SuggestionCacheTTL.Duration <= 0 {
		c.SuggestionCacheTTL = def.SuggestionCacheTTL
	}
	if c.MemoryCacheSizeMB <= 0 {
		c.MemoryCacheSizeMB = def.MemoryCacheSizeMB
	}
	if c.VariabilityFactor <= 0 {
		c.VariabilityFactor = def.VariabilityFactor
	}
	if c.WeightPreset == "" {
		c.WeightPreset = def.WeightPreset
	}
}

func (c *Config) Validate() error {
	switch c.SuggestionCache {
	case SuggestionCacheRedis, SuggestionCacheMemory, SuggestionCacheNone:
	default:
		return fmt.Errorf("unknown suggestion cache: %s", c.SuggestionCache)
	}
	if _, err := training.WeightPreset(c.WeightPreset); err != nil {
		return err
	}
	if c.UseAIBackend && c.AIServerBaseURL == "" {
		return fmt.Errorf("ai backend enabled without ai_server_base_url")
	}
	return nil
}
