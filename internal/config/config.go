// Package config loads the gomovie client configuration. Values are layered:
// struct defaults, then an optional YAML config file, then GOMOVIE_*
// environment variables with the highest priority.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config is the explicit configuration handle constructed once at startup
// and passed into every API client and repository.
type Config struct {
	Backend  BackendConfig  `koanf:"backend"`
	Metadata MetadataConfig `koanf:"metadata"`
	Store    StoreConfig    `koanf:"store"`
	Debug    bool           `koanf:"debug"`
}

// BackendConfig points at the collection backend REST API.
type BackendConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

// MetadataConfig points at the movie metadata provider.
type MetadataConfig struct {
	BaseURL          string        `koanf:"base_url"`
	ImageBaseURL     string        `koanf:"image_base_url"`
	APIKey           string        `koanf:"api_key"`
	PrimaryLanguage  string        `koanf:"primary_language"`
	FallbackLanguage string        `koanf:"fallback_language"`
	Timeout          time.Duration `koanf:"timeout"`
}

// StoreConfig locates the on-disk credential store.
type StoreConfig struct {
	Dir string `koanf:"dir"`
}

func defaultConfig() Config {
	return Config{
		Backend: BackendConfig{
			BaseURL: "http://localhost:8080",
			Timeout: 30 * time.Second,
		},
		Metadata: MetadataConfig{
			BaseURL:          "https://api.themoviedb.org/3",
			ImageBaseURL:     "https://image.tmdb.org/t/p",
			PrimaryLanguage:  "es-ES",
			FallbackLanguage: "en-US",
			Timeout:          15 * time.Second,
		},
		Store: StoreConfig{
			Dir: defaultStoreDir(),
		},
	}
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gomovie"
	}
	return filepath.Join(home, ".gomovie")
}

// Load builds a Config from defaults, the optional config file at path
// (empty means "search the default locations") and GOMOVIE_* env vars.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, errors.Wrap(err, "loading defaults")
	}

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "loading config file %s", path)
		}
	}

	// GOMOVIE_BACKEND_BASE_URL -> backend.base_url, etc. Only the first
	// underscore separates the section from the key.
	envProvider := env.Provider("GOMOVIE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "GOMOVIE_"))
		return strings.Replace(s, "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "loading environment")
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	candidates := []string{
		"gomovie.yaml",
		filepath.Join(defaultStoreDir(), "config.yaml"),
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks the fields no client can run without.
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return errors.New("backend.base_url must not be empty")
	}
	if c.Metadata.BaseURL == "" {
		return errors.New("metadata.base_url must not be empty")
	}
	if c.Metadata.PrimaryLanguage == "" || c.Metadata.FallbackLanguage == "" {
		return errors.New("metadata languages must not be empty")
	}
	return nil
}
