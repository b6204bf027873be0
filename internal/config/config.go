package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFile   string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	HumanMark string `yaml:"human-mark" env:"HUMAN_MARK" env-default:"X"`
	NoColor   bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR"`
}

// Load reads the config file at path and the environment. A missing file is not an error.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
