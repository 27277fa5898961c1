package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port int `envconfig:"PORT" default:"8080"`
	}

	Brand struct {
		Name     string `envconfig:"BRAND_NAME" default:"Village Kitchen"`
		Tagline  string `envconfig:"BRAND_TAGLINE" default:"Love at First Bite"`
		Phone    string `envconfig:"BRAND_PHONE" default:"+91 6305376320"`
		Currency string `envconfig:"BRAND_CURRENCY" default:"Rs."`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Export struct {
		// Directory the TUI writes generated invoices into.
		OutputDir string `envconfig:"INVOICE_OUTPUT_DIR" default:"./invoices"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
