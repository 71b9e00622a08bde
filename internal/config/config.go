package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prom_metrics_host"`
	PrometheusMetricsPort string `toml:"prom_metrics_port"`

	// abuse prevention
	LoginRateLimitAllowedPerMin    int `toml:"login_rate_limit_allowed_per_min"`
	InsightsRateLimitAllowedPerMin int `toml:"insights_rate_limit_allowed_per_min"`

	// insights generator endpoint (external text-generation collaborator)
	InsightsApiUrl string `toml:"insights_api_url"`

	// wearable provider sync
	WearableSyncEnabled      bool  `toml:"wearable_sync_enabled"`
	WearableSyncIntervalMins int   `toml:"wearable_sync_interval_mins"`
	WearableSyncUserIDs      []int `toml:"wearable_sync_user_ids"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Load(env, path string) (*Config, error) {
	configBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var tomlConfig Toml
	if err := toml.Unmarshal(configBytes, &tomlConfig); err != nil {
		return nil, fmt.Errorf("unmarshal config file: %w", err)
	}

	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env %s not found in %s", env, path)
	}

	cfg.Environment = env
	return cfg, nil
}
