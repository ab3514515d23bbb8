// Package config loads the solindex configuration from an optional YAML file
// and SOLINDEX_* environment variables, environment taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/solindex/internal/indexer"
	"github.com/gabapcia/solindex/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SOLINDEX"

// ErrMissingSetting is returned when the selected storage lacks its connection setting.
var ErrMissingSetting = errors.New("missing setting")

type (
	LogConfig struct {
		Level      string `yaml:"level" split_words:"true" validate:"oneof=debug info warn error"`
		File       string `yaml:"file" split_words:"true"`
		MaxSizeMB  int    `yaml:"max_size_mb" split_words:"true" validate:"min=0"`
		MaxBackups int    `yaml:"max_backups" split_words:"true" validate:"min=0"`
	}

	RPCConfig struct {
		Environment string        `yaml:"environment" split_words:"true" validate:"oneof=mainnet devnet testnet localnet"`
		Endpoint    string        `yaml:"endpoint" split_words:"true" validate:"omitempty,url"`
		Timeout     time.Duration `yaml:"timeout" split_words:"true" validate:"min=0"`
		RetryMax    int           `yaml:"retry_max" split_words:"true" validate:"min=0"`
		RateLimit   float64       `yaml:"rate_limit" split_words:"true" validate:"min=0"` // requests per second; zero disables
		Burst       int           `yaml:"burst" split_words:"true" validate:"min=0"`
		WaitHealthy bool          `yaml:"wait_healthy" split_words:"true"`
	}

	IndexerConfig struct {
		Mode         string        `yaml:"mode" split_words:"true" validate:"oneof=account transaction program"`
		Addresses    []string      `yaml:"addresses" split_words:"true"`
		ProgramID    string        `yaml:"program_id" split_words:"true"`
		PollInterval time.Duration `yaml:"poll_interval" split_words:"true"`
		BatchSize    int           `yaml:"batch_size" split_words:"true"`
		FetchRetries uint          `yaml:"fetch_retries" split_words:"true"` // extra attempts per ledger read; zero disables
		Processors   []string      `yaml:"processors" split_words:"true"`
	}

	RedisConfig struct {
		Addr     string `yaml:"addr" split_words:"true"`
		Username string `yaml:"username" split_words:"true"`
		Password string `yaml:"password" split_words:"true"`
		DB       int    `yaml:"db" split_words:"true" validate:"min=0"`
		Mode     string `yaml:"mode" split_words:"true" validate:"omitempty,oneof=list publish"`
		Key      string `yaml:"key" split_words:"true"`
	}

	PostgresConfig struct {
		DSN string `yaml:"dsn" split_words:"true"`
	}

	MongoConfig struct {
		URI        string `yaml:"uri" split_words:"true"`
		Database   string `yaml:"database" split_words:"true"`
		Collection string `yaml:"collection" split_words:"true"`
	}

	StorageConfig struct {
		Kind     string         `yaml:"kind" split_words:"true" validate:"oneof=memory json redis postgres mongo"`
		Path     string         `yaml:"path" split_words:"true"`
		Redis    RedisConfig    `yaml:"redis" split_words:"true"`
		Postgres PostgresConfig `yaml:"postgres" split_words:"true"`
		Mongo    MongoConfig    `yaml:"mongo" split_words:"true"`
	}

	TelemetryConfig struct {
		Enabled     bool   `yaml:"enabled" split_words:"true"`
		ServiceName string `yaml:"service_name" split_words:"true"`
	}

	// Config is the complete process configuration.
	Config struct {
		Log       LogConfig       `yaml:"log" split_words:"true"`
		RPC       RPCConfig       `yaml:"rpc" split_words:"true"`
		Indexer   IndexerConfig   `yaml:"indexer" split_words:"true"`
		Storage   StorageConfig   `yaml:"storage" split_words:"true"`
		Telemetry TelemetryConfig `yaml:"telemetry" split_words:"true"`
	}
)

func defaults() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
		RPC: RPCConfig{
			Environment: string(indexer.Mainnet),
			Timeout:     30 * time.Second,
			RetryMax:    3,
		},
		Indexer: IndexerConfig{
			Mode:         string(indexer.ModeTransaction),
			PollInterval: indexer.DefaultPollInterval,
			BatchSize:    indexer.DefaultBatchSize,
		},
		Storage: StorageConfig{
			Kind: "memory",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "solindex",
		},
	}
}

// Load reads path, when not empty, over the defaults and then applies the
// SOLINDEX_* environment. The result is validated.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings that do not depend on the indexer. The
// indexer settings are validated when the engine is built.
func (c Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return err
	}

	var missing string
	switch {
	case c.Storage.Kind == "redis" && c.Storage.Redis.Addr == "":
		missing = "storage.redis.addr"
	case c.Storage.Kind == "postgres" && c.Storage.Postgres.DSN == "":
		missing = "storage.postgres.dsn"
	case c.Storage.Kind == "mongo" && c.Storage.Mongo.URI == "":
		missing = "storage.mongo.uri"
	}
	if missing != "" {
		return errors.Join(validator.ErrValidationFailed, fmt.Errorf("%w: %s is required by the %s storage", ErrMissingSetting, missing, c.Storage.Kind))
	}

	return nil
}
