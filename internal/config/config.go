package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	API     APIConfig
	Map     MapConfig
	Session SessionConfig
}

type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api/v1"`
	Timeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
}

type MapConfig struct {
	BaseURL string  `env:"MAP_BASE_URL" envDefault:"https://rsapi.goong.io"`
	APIKey  string  `env:"MAP_API_KEY" envDefault:""`
	ShopLat float64 `env:"SHOP_LAT" envDefault:"10.8411276"`
	ShopLng float64 `env:"SHOP_LNG" envDefault:"106.8090055"`
}

type SessionConfig struct {
	// Path of the persisted session blob. Resolved under the user config
	// dir when left empty.
	Path string `env:"SESSION_PATH" envDefault:""`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Session.Path == "" {
		cfg.Session.Path = filepath.Join(configDir(), "session.json")
	}
	return cfg, nil
}

func configDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "flowerstore")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "flowerstore")
}
