package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
)

const DefaultPath = "typetester.toml"

type Config struct {
	Discord struct {
		Token string `toml:"token"`
	} `toml:"discord"`
	DB struct {
		Path string `toml:"path"`
	} `toml:"database"`
	Log struct {
		Level  string `toml:"level"`
		Pretty bool   `toml:"pretty"`
	} `toml:"log"`
	Output struct {
		Format string `toml:"format"`
	} `toml:"output"`
	Bot struct {
		AutocompleteLimit int    `toml:"autocomplete_limit"`
		ResultLimit       int    `toml:"result_limit"`
		EmojiGuild        string `toml:"emoji_guild"`
	} `toml:"bot"`
}

func Default() Config {
	var cfg Config
	cfg.Log.Level = "info"
	cfg.Log.Pretty = true
	cfg.Output.Format = "text"
	cfg.Bot.AutocompleteLimit = 25
	cfg.Bot.ResultLimit = 15
	return cfg
}

var (
	ErrMissingToken  = errors.New("discord token is not configured")
	ErrMissingDB     = errors.New("database path is not configured")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Read decodes the TOML file at path over the defaults. A missing file is not
// an error.
func Read(path string) (*Config, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}

	return &cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Bot.AutocompleteLimit < 1 || cfg.Bot.AutocompleteLimit > 25 {
		return fmt.Errorf("autocomplete_limit must be between 1 and 25: %w", ErrInvalidConfig)
	}
	if cfg.Bot.ResultLimit < 1 || cfg.Bot.ResultLimit > 25 {
		return fmt.Errorf("result_limit must be between 1 and 25: %w", ErrInvalidConfig)
	}

	return nil
}
