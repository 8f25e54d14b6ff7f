package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env:"LEAGUE_ENV" env-default:"local"`
	Seed   Seed   `yaml:"seed"`
	Report Report `yaml:"report"`
}

type Seed struct {
	// Path is the YAML file the league is loaded from. Empty starts an empty league.
	Path string `yaml:"path" env:"LEAGUE_SEED_PATH"`
}

// Report limits the results listed at startup. Both bounds are dd-mm-yyyy dates.
type Report struct {
	From string `yaml:"from" env:"LEAGUE_REPORT_FROM" env-default:"01-01-1950"`
	To   string `yaml:"to" env:"LEAGUE_REPORT_TO" env-default:"31-12-2100"`
}

func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		return nil, errors.New("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file does not exist: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}

	return cfg
}
