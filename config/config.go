package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"git.lolli.tech/lollipopkit/minicpp/consts"
	"gopkg.in/yaml.v3"
)

// Config is read from ~/.config/minicpp.yaml unless told otherwise.
type Config struct {
	Debug bool `yaml:"debug"`
	// Color is "auto", "always" or "never".
	Color          string `yaml:"color"`
	HistoryFile    string `yaml:"history_file"`
	HistorySize    int    `yaml:"history_size"`
	QueryCacheSize int    `yaml:"query_cache_size"`
	// ChunkCache toggles reuse of .astc files by the CLI.
	ChunkCache bool `yaml:"chunk_cache"`
}

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var ErrBadColor = errors.New("color must be auto, always or never")

func Default() *Config {
	return &Config{
		Color:          ColorAuto,
		HistoryFile:    consts.HistoryPath,
		HistorySize:    500,
		QueryCacheSize: 32,
		ChunkCache:     true,
	}
}

// Path picks the config file: the explicit path, then $MINICPP_CONFIG,
// then the default location.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(consts.EnvConfig); p != "" {
		return p
	}
	return consts.DefaultConfigPath
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error unless the path was given explicitly.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(os.ExpandEnv(path))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	v, ok := os.LookupEnv(consts.EnvDebug)
	if !ok {
		return
	}
	if b, err := strconv.ParseBool(v); err == nil {
		c.Debug = b
	} else {
		c.Debug = v != ""
	}
}

// Validate fills in zero sizes and rejects unknown color modes.
func (c *Config) Validate() error {
	switch c.Color {
	case "":
		c.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w, got %q", ErrBadColor, c.Color)
	}
	if c.HistorySize <= 0 {
		c.HistorySize = Default().HistorySize
	}
	if c.QueryCacheSize <= 0 {
		c.QueryCacheSize = Default().QueryCacheSize
	}
	if c.HistoryFile == "" {
		c.HistoryFile = consts.HistoryPath
	}
	return nil
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Save writes the config as YAML, creating the parent directory.
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
