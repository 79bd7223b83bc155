package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the variable holding the config file path
const PathEnv = "BTCCONV_CONFIG"

type Config struct {
	Env      string `yaml:"env" env:"BTCCONV_ENV" env-default:"local"`
	Base     string `yaml:"base" env:"BTCCONV_BASE" env-default:"BTC"`
	HTTP     HTTP     `yaml:"http"`
	Coinbase Coinbase `yaml:"coinbase"`
	Log      Log      `yaml:"log"`
}

type HTTP struct {
	Addr string `yaml:"addr" env:"BTCCONV_HTTP_ADDR" env-default:":8080"`
}

type Coinbase struct {
	URL               string        `yaml:"url" env:"BTCCONV_COINBASE_URL" env-default:"https://api.coinbase.com/v2"`
	Timeout           time.Duration `yaml:"timeout" env:"BTCCONV_COINBASE_TIMEOUT" env-default:"5s"`
	RequestsPerSecond float64       `yaml:"requests_per_second" env:"BTCCONV_COINBASE_RPS" env-default:"10"`
	Burst             int           `yaml:"burst" env:"BTCCONV_COINBASE_BURST" env-default:"10"`
}

type Log struct {
	Level  string `yaml:"level" env:"BTCCONV_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"BTCCONV_LOG_FORMAT" env-default:"logfmt"`
}

// Load reads the YAML file at path, then applies environment overrides.
// With an empty path only the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading env: %w", err)
		}
		return &cfg, cfg.validate()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("reading config [%v]: %w", path, err)
	}
	return &cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Log.Format {
	case "logfmt", "json":
	default:
		return fmt.Errorf("unknown log format: %v", c.Log.Format)
	}
	if c.Coinbase.RequestsPerSecond <= 0 {
		return fmt.Errorf("coinbase requests_per_second must be positive, got %v", c.Coinbase.RequestsPerSecond)
	}
	if c.Coinbase.Burst < 1 {
		return fmt.Errorf("coinbase burst must be at least 1, got %v", c.Coinbase.Burst)
	}
	return nil
}
