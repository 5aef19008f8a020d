package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string `env:"DRAFT_ADDR" envDefault:":8080"`
	CatalogPath string `env:"DRAFT_CATALOG" envDefault:"data/chars.json"`
	CatalogDSN  string `env:"DRAFT_CATALOG_DSN"`
	PublicDir   string `env:"DRAFT_PUBLIC_DIR" envDefault:"public"`
	Debug       bool   `env:"DRAFT_DEBUG"`
}

// Load reads configuration from the environment, seeded from a .env file
// when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
